package models

type PackageCustomField struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

// ConsultationPackage names are unique; registration references a package by
// name rather than by id.
type ConsultationPackage struct {
	ID           string               `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string               `json:"name" bson:"name"`
	Description  string               `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64              `json:"price" bson:"price"`
	CustomFields []PackageCustomField `json:"customFields,omitempty" bson:"customFields,omitempty"`
	TimeModel    `bson:",inline"`
}
