package contracts

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type PackageRepository interface {
	FindAll(ctx context.Context) ([]models.ConsultationPackage, error)
	FindByID(ctx context.Context, packageID string) (*models.ConsultationPackage, error)
	FindByName(ctx context.Context, name string) (*models.ConsultationPackage, error)
	CreatePackage(ctx context.Context, pkg *models.ConsultationPackage) (string, error)
	UpdatePackage(ctx context.Context, pkg *models.ConsultationPackage) error
	DeletePackage(ctx context.Context, packageID string) error
}

type PackageUsecase interface {
	ListPackages(ctx context.Context) (*responses.PackageList, error)
	CreatePackage(ctx context.Context, request *requests.SavePackage) (*responses.SavePackage, error)
	UpdatePackage(ctx context.Context, packageID string, request *requests.SavePackage) error
	DeletePackage(ctx context.Context, packageID string) error
}
