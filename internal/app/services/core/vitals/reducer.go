package vitals

import (
	"intake-service/internal/app/models"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionUpdateVital       ActionType = "UPDATE_VITAL"
	ActionToggleRiskFlag    ActionType = "TOGGLE_RISK_FLAG"
	ActionAddCustomVital    ActionType = "ADD_CUSTOM_VITAL"
	ActionRemoveCustomVital ActionType = "REMOVE_CUSTOM_VITAL"
	ActionUpdateCustomVital ActionType = "UPDATE_CUSTOM_VITAL"
	ActionSetCustomVital    ActionType = "SET_CUSTOM_VITAL"
	ActionResetVitals       ActionType = "RESET_VITALS"
)

type Action struct {
	Type  ActionType
	Field string
	Value string
	Flag  string
	ID    string
	Name  string
	Unit  string
}

func NewVitalsState() models.VitalsState {
	return models.VitalsState{CustomVitals: []models.CustomVital{}}
}

// Apply transitions the capture state. Unknown action types and unknown
// fields leave the state untouched.
func Apply(state models.VitalsState, action Action) models.VitalsState {
	switch action.Type {
	case ActionUpdateVital:
		return applyUpdateVital(state, action.Field, action.Value)
	case ActionToggleRiskFlag:
		return applyToggleRiskFlag(state, action.Flag)
	case ActionAddCustomVital:
		state.CustomVitals = append(cloneCustomVitals(state.CustomVitals), models.CustomVital{
			ID:   uuid.New().String(),
			Name: action.Name,
			Unit: action.Unit,
		})
		return state
	case ActionRemoveCustomVital:
		var kept []models.CustomVital
		for _, cv := range state.CustomVitals {
			if cv.ID != action.ID {
				kept = append(kept, cv)
			}
		}
		state.CustomVitals = kept
		return state
	case ActionUpdateCustomVital:
		updated := cloneCustomVitals(state.CustomVitals)
		for i := range updated {
			if updated[i].ID != action.ID {
				continue
			}
			switch action.Field {
			case "name":
				updated[i].Name = action.Value
			case "value":
				updated[i].Value = action.Value
			case "unit":
				updated[i].Unit = action.Value
			}
		}
		state.CustomVitals = updated
		return state
	case ActionSetCustomVital:
		updated := cloneCustomVitals(state.CustomVitals)
		for i := range updated {
			if updated[i].ID == action.ID {
				updated[i].Name = action.Name
				updated[i].Unit = action.Unit
				updated[i].Value = action.Value
				state.CustomVitals = updated
				return state
			}
		}
		state.CustomVitals = append(updated, models.CustomVital{
			ID:    action.ID,
			Name:  action.Name,
			Unit:  action.Unit,
			Value: action.Value,
		})
		return state
	case ActionResetVitals:
		return NewVitalsState()
	default:
		return state
	}
}

func applyUpdateVital(state models.VitalsState, field, value string) models.VitalsState {
	switch field {
	case "weight":
		state.Weight = value
	case "height":
		state.Height = value
	case "bmi":
		state.BMI = value
	case "pulse":
		state.Pulse = value
	case "bpSystolic":
		state.BPSystolic = value
	case "bpDiastolic":
		state.BPDiastolic = value
	case "temperature":
		state.Temperature = value
	case "spo2":
		state.SpO2 = value
	case "respiratoryRate":
		state.RespiratoryRate = value
	case "painScore":
		state.PainScore = value
	case "gcsE":
		state.GCSE = value
	case "gcsV":
		state.GCSV = value
	case "gcsM":
		state.GCSM = value
	case "map":
		state.MAP = value
	}
	return state
}

func applyToggleRiskFlag(state models.VitalsState, flag string) models.VitalsState {
	switch flag {
	case "diabetes":
		state.RiskFlags.Diabetes = !state.RiskFlags.Diabetes
	case "heartDisease":
		state.RiskFlags.HeartDisease = !state.RiskFlags.HeartDisease
	case "kidney":
		state.RiskFlags.Kidney = !state.RiskFlags.Kidney
	}
	return state
}

func cloneCustomVitals(in []models.CustomVital) []models.CustomVital {
	out := make([]models.CustomVital, len(in))
	copy(out, in)
	return out
}
