package vitals

import (
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/utils"
)

// StandardDefinitions is the seed set for the vitalDefinitions collection.
// These rows can be hidden through the vitals config but never deleted.
func StandardDefinitions(now time.Time) []models.VitalDefinition {
	return []models.VitalDefinition{
		{Key: "bmi", Label: "BMI", CreatedAt: now},
		{Key: "bp", Label: "Blood Pressure", Unit: "mmHg", CreatedAt: now},
		{Key: "pulse", Label: "Pulse", Unit: "bpm", CreatedAt: now},
		{Key: "spo2", Label: "SpO2", Unit: "%", CreatedAt: now},
		{Key: "temperature", Label: "Temperature", Unit: "F", CreatedAt: now},
		{Key: "respiratoryRate", Label: "Respiratory Rate", Unit: "/min", CreatedAt: now},
		{Key: "weight", Label: "Weight", Unit: "kg", CreatedAt: now},
		{Key: "height", Label: "Height", Unit: "cm", CreatedAt: now},
		{Key: "gcs", Label: "GCS", CreatedAt: now},
		{Key: "painScore", Label: "Pain Score", CreatedAt: now},
		{Key: "map", Label: "MAP", Unit: "mmHg", CreatedAt: now},
		{Key: "custom", Label: "Additional Vitals Section", CreatedAt: now},
	}
}

// DefaultVisibility is the vitals config applied before staff ever saves one.
func DefaultVisibility() map[string]bool {
	return map[string]bool{
		"weight":          true,
		"height":          true,
		"bmi":             true,
		"pulse":           true,
		"temperature":     true,
		"bp":              true,
		"spo2":            true,
		"respiratoryRate": true,
		"painScore":       true,
		"gcs":             true,
		"custom":          true,
	}
}

// ApplyVisibility blanks readings whose section has been switched off, so a
// hidden input can never smuggle a value into the saved snapshot.
func ApplyVisibility(state models.VitalsState, visibility map[string]bool) models.VitalsState {
	hidden := func(key string) bool {
		enabled, ok := visibility[key]
		return ok && !enabled
	}

	if hidden("weight") {
		state.Weight = ""
	}
	if hidden("height") {
		state.Height = ""
	}
	if hidden("bmi") {
		state.BMI = ""
	}
	if hidden("pulse") {
		state.Pulse = ""
	}
	if hidden("temperature") {
		state.Temperature = ""
	}
	if hidden("bp") {
		state.BPSystolic = ""
		state.BPDiastolic = ""
		state.MAP = ""
	}
	if hidden("spo2") {
		state.SpO2 = ""
	}
	if hidden("respiratoryRate") {
		state.RespiratoryRate = ""
	}
	if hidden("painScore") {
		state.PainScore = ""
	}
	if hidden("gcs") {
		state.GCSE = ""
		state.GCSV = ""
		state.GCSM = ""
	}
	if hidden("custom") {
		state.CustomVitals = []models.CustomVital{}
	} else {
		// Each configured custom vital is also switchable on its own key.
		kept := make([]models.CustomVital, 0, len(state.CustomVitals))
		for _, customVital := range state.CustomVitals {
			if !hidden(utils.DeriveVitalKey(customVital.Name)) {
				kept = append(kept, customVital)
			}
		}
		state.CustomVitals = kept
	}
	return state
}
