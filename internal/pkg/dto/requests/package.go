package requests

type PackageCustomField struct {
	ID    string `json:"id"`
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
}

type SavePackage struct {
	Name         string               `json:"name" validate:"required"`
	Description  string               `json:"description"`
	Price        float64              `json:"price" validate:"gte=0"`
	CustomFields []PackageCustomField `json:"customFields" validate:"dive"`
}
