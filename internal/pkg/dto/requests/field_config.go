package requests

// UpdateFieldConfig replaces a visibility map wholesale. Keys absent from the
// map stay visible; only an explicit false hides a field.
type UpdateFieldConfig struct {
	Fields map[string]bool `json:"fields" validate:"required"`
}
