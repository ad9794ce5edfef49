package responses

import "intake-service/internal/app/models"

type SavePackage struct {
	ID string `json:"id"`
}

type PackageList struct {
	Packages []models.ConsultationPackage `json:"packages"`
}
