package packages

import (
	"context"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
)

type packageUsecase struct {
	PackageRepository contracts.PackageRepository
}

func NewPackageUsecase(packageRepository contracts.PackageRepository) contracts.PackageUsecase {
	return &packageUsecase{PackageRepository: packageRepository}
}

// defaultPackages seeds an empty collection on first read so a fresh
// deployment has something to register patients against.
func defaultPackages() []models.ConsultationPackage {
	return []models.ConsultationPackage{
		{
			Name:  "General OPD",
			Price: 500,
			CustomFields: []models.PackageCustomField{
				{ID: "pf1", Label: "Validity", Value: "7 Days"},
			},
		},
		{
			Name:  "Specialist Consultation",
			Price: 800,
			CustomFields: []models.PackageCustomField{
				{ID: "pf2", Label: "Includes", Value: "BP Check"},
			},
		},
		{Name: "Emergency", Price: 1200},
		{Name: "Follow-up", Price: 0},
	}
}

func (uc *packageUsecase) ListPackages(ctx context.Context) (*responses.PackageList, error) {
	packageList, err := uc.PackageRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(packageList) == 0 {
		for _, pkg := range defaultPackages() {
			seeded := pkg
			seeded.SetCreatedAtUpdatedAt()
			id, err := uc.PackageRepository.CreatePackage(ctx, &seeded)
			if err != nil {
				return nil, err
			}
			seeded.ID = id
			packageList = append(packageList, seeded)
		}
	}

	return &responses.PackageList{Packages: packageList}, nil
}

func (uc *packageUsecase) CreatePackage(ctx context.Context, request *requests.SavePackage) (*responses.SavePackage, error) {
	existing, err := uc.PackageRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPackageNameTaken(request.Name)
	}

	pkg := buildPackage(request)
	pkg.SetCreatedAtUpdatedAt()
	id, err := uc.PackageRepository.CreatePackage(ctx, pkg)
	if err != nil {
		return nil, err
	}
	return &responses.SavePackage{ID: id}, nil
}

func (uc *packageUsecase) UpdatePackage(ctx context.Context, packageID string, request *requests.SavePackage) error {
	current, err := uc.PackageRepository.FindByID(ctx, packageID)
	if err != nil {
		return err
	}
	if current == nil {
		return exceptions.ErrPackageNotFound(nil)
	}

	collision, err := uc.PackageRepository.FindByName(ctx, request.Name)
	if err != nil {
		return err
	}
	if collision != nil && collision.ID != packageID {
		return exceptions.ErrPackageNameTaken(request.Name)
	}

	pkg := buildPackage(request)
	pkg.ID = packageID
	pkg.CreatedAt = current.CreatedAt
	pkg.SetUpdatedAt()
	return uc.PackageRepository.UpdatePackage(ctx, pkg)
}

func (uc *packageUsecase) DeletePackage(ctx context.Context, packageID string) error {
	current, err := uc.PackageRepository.FindByID(ctx, packageID)
	if err != nil {
		return err
	}
	if current == nil {
		return exceptions.ErrPackageNotFound(nil)
	}
	return uc.PackageRepository.DeletePackage(ctx, packageID)
}

func buildPackage(request *requests.SavePackage) *models.ConsultationPackage {
	fields := make([]models.PackageCustomField, 0, len(request.CustomFields))
	for _, field := range request.CustomFields {
		fields = append(fields, models.PackageCustomField{
			ID:    field.ID,
			Label: field.Label,
			Value: field.Value,
		})
	}
	return &models.ConsultationPackage{
		Name:         request.Name,
		Description:  request.Description,
		Price:        request.Price,
		CustomFields: fields,
	}
}
