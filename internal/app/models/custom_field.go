package models

// CustomFieldDefinition is a reusable field offered on every registration
// form. Definitions live in a single patientConfig document so removing one
// removes it for all future registrations.
type CustomFieldDefinition struct {
	Label       string `json:"label" bson:"label"`
	Placeholder string `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
}

type PersistedCustomLabels struct {
	ID     string                  `json:"id" bson:"_id"`
	Labels []CustomFieldDefinition `json:"labels" bson:"labels"`
}
