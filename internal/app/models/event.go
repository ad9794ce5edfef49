package models

import "time"

// PatientRegisteredEvent is published to the queue when a registration
// completes, so downstream consumers (queue displays, notifications) can
// react without the registration path waiting on them.
type PatientRegisteredEvent struct {
	PatientID      string    `json:"patientId"`
	UHID           string    `json:"uhid"`
	FullName       string    `json:"fullName"`
	DoctorAssigned string    `json:"doctorAssigned"`
	PackageName    string    `json:"packageName,omitempty"`
	RegisteredAt   time.Time `json:"registeredAt"`
}
