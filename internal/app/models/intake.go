package models

import "time"

type ComplaintDuration struct {
	Value string `json:"value" bson:"value"`
	Unit  string `json:"unit" bson:"unit"`
}

type Complaint struct {
	ID               string            `json:"id" bson:"id"`
	Complaint        string            `json:"complaint" bson:"complaint"`
	Duration         ComplaintDuration `json:"duration" bson:"duration"`
	Severity         string            `json:"severity" bson:"severity"`
	Specialty        string            `json:"specialty" bson:"specialty"`
	RedFlagTriggered bool              `json:"redFlagTriggered" bson:"redFlagTriggered"`
}

// ChronicConditionDuration is either a preset band ("< 1 year", "1-5 years",
// ...) or an explicit years/months pair. Only one of the two forms is filled.
type ChronicConditionDuration struct {
	Preset string `json:"preset,omitempty" bson:"preset,omitempty"`
	Years  string `json:"years,omitempty" bson:"years,omitempty"`
	Months string `json:"months,omitempty" bson:"months,omitempty"`
}

type Medication struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Dose       string `json:"dose,omitempty" bson:"dose,omitempty"`
	Frequency  string `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Route      string `json:"route,omitempty" bson:"route,omitempty"`
	Compliance string `json:"compliance,omitempty" bson:"compliance,omitempty"`
}

type ChronicCondition struct {
	ID           string                   `json:"id" bson:"id"`
	Name         string                   `json:"name" bson:"name"`
	Duration     ChronicConditionDuration `json:"duration" bson:"duration"`
	OnMedication string                   `json:"onMedication" bson:"onMedication"`
	Medications  []Medication             `json:"medications" bson:"medications"`
}

type Allergies struct {
	HasAllergies bool     `json:"hasAllergies" bson:"hasAllergies"`
	Types        []string `json:"types" bson:"types"`
	Substance    string   `json:"substance" bson:"substance"`
	Reaction     string   `json:"reaction" bson:"reaction"`
	Severity     string   `json:"severity" bson:"severity"`
}

type SurgeryEntry struct {
	Name string `json:"name" bson:"name"`
	Year string `json:"year" bson:"year"`
}

type HospitalizationEntry struct {
	Reason string `json:"reason" bson:"reason"`
	Year   string `json:"year" bson:"year"`
}

type PastHistory struct {
	Illnesses          []string               `json:"illnesses" bson:"illnesses"`
	Surgeries          []SurgeryEntry         `json:"surgeries" bson:"surgeries"`
	Hospitalizations   []HospitalizationEntry `json:"hospitalizations" bson:"hospitalizations"`
	CurrentMedications []Medication           `json:"currentMedications" bson:"currentMedications"`
	OverallCompliance  string                 `json:"overallCompliance" bson:"overallCompliance"`
}

type IntakeState struct {
	Complaints        []Complaint        `json:"complaints" bson:"complaints"`
	ChronicConditions []ChronicCondition `json:"chronicConditions" bson:"chronicConditions"`
	Allergies         Allergies          `json:"allergies" bson:"allergies"`
	PastHistory       PastHistory        `json:"pastHistory" bson:"pastHistory"`
}

// ExtractedDocument is the text pulled out of one uploaded record, kept with
// the intake so the summarizer can use it.
type ExtractedDocument struct {
	Category string `json:"category" bson:"category"`
	FileName string `json:"fileName" bson:"fileName"`
	Text     string `json:"text" bson:"text"`
}

type IntakeRecord struct {
	ID          string              `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID   string              `json:"patientId" bson:"patientId"`
	PatientUHID string              `json:"patientUhid" bson:"patientUhid"`
	PatientName string              `json:"patientName" bson:"patientName"`
	Intake      IntakeState         `json:"intake" bson:"intake"`
	Documents   []ExtractedDocument `json:"documents,omitempty" bson:"documents,omitempty"`
	SubmittedAt time.Time           `json:"submittedAt" bson:"submittedAt"`
	Status      string              `json:"status" bson:"status"`
}
