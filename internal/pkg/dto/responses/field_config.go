package responses

type RegistrationFieldInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Group string `json:"group"`
}

type FieldConfig struct {
	Fields map[string]bool `json:"fields"`
	// Sections is only populated for the registration config: a section shows
	// when any of its member keys is not explicitly hidden.
	Sections map[string]bool         `json:"sections,omitempty"`
	Registry []RegistrationFieldInfo `json:"registry,omitempty"`
}
