package models

import "time"

// Vital readings are carried as strings because the capture form allows
// partial input; calculators parse and ignore what does not parse.
type VitalsState struct {
	Weight          string        `json:"weight" bson:"weight"`
	Height          string        `json:"height" bson:"height"`
	BMI             string        `json:"bmi" bson:"bmi"`
	Pulse           string        `json:"pulse" bson:"pulse"`
	BPSystolic      string        `json:"bpSystolic" bson:"bpSystolic"`
	BPDiastolic     string        `json:"bpDiastolic" bson:"bpDiastolic"`
	Temperature     string        `json:"temperature" bson:"temperature"`
	SpO2            string        `json:"spo2" bson:"spo2"`
	RespiratoryRate string        `json:"respiratoryRate" bson:"respiratoryRate"`
	PainScore       string        `json:"painScore" bson:"painScore"`
	GCSE            string        `json:"gcsE" bson:"gcsE"`
	GCSV            string        `json:"gcsV" bson:"gcsV"`
	GCSM            string        `json:"gcsM" bson:"gcsM"`
	MAP             string        `json:"map" bson:"map"`
	RiskFlags       RiskFlags     `json:"riskFlags" bson:"riskFlags"`
	CustomVitals    []CustomVital `json:"customVitals" bson:"customVitals"`
}

type RiskFlags struct {
	Diabetes     bool `json:"diabetes" bson:"diabetes"`
	HeartDisease bool `json:"heartDisease" bson:"heartDisease"`
	Kidney       bool `json:"kidney" bson:"kidney"`
}

type CustomVital struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
	Unit  string `json:"unit" bson:"unit"`
}

// VitalDefinition describes one row of the vitals capture form. Standard
// definitions are seeded and can only be disabled; custom ones are
// staff-created and deletable.
type VitalDefinition struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Key       string    `json:"key" bson:"key"`
	Label     string    `json:"label" bson:"label"`
	Unit      string    `json:"unit,omitempty" bson:"unit,omitempty"`
	MinVal    *float64  `json:"minVal,omitempty" bson:"minVal,omitempty"`
	MaxVal    *float64  `json:"maxVal,omitempty" bson:"maxVal,omitempty"`
	IsCustom  bool      `json:"isCustom" bson:"isCustom"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type VitalsRecord struct {
	ID          string      `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID   string      `json:"patientId" bson:"patientId"`
	PatientUHID string      `json:"patientUhid" bson:"patientUhid"`
	PatientName string      `json:"patientName" bson:"patientName"`
	Vitals      VitalsState `json:"vitals" bson:"vitals"`
	RecordedAt  time.Time   `json:"recordedAt" bson:"recordedAt"`
	RecordedBy  string      `json:"recordedBy" bson:"recordedBy"`
	Status      string      `json:"status" bson:"status"`
}
