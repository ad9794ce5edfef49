package requests

type CreateCustomFieldDefinition struct {
	Label       string `json:"label" validate:"required"`
	Placeholder string `json:"placeholder"`
}

type RemoveCustomFieldDefinition struct {
	Confirm bool `json:"confirm"`
}
