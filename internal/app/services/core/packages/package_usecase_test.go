package packages

import (
	"context"
	"strings"
	"testing"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type fakePackageRepository struct {
	packages []models.ConsultationPackage
	nextID   int
}

func (f *fakePackageRepository) FindAll(ctx context.Context) ([]models.ConsultationPackage, error) {
	return f.packages, nil
}

func (f *fakePackageRepository) FindByID(ctx context.Context, packageID string) (*models.ConsultationPackage, error) {
	for i := range f.packages {
		if f.packages[i].ID == packageID {
			return &f.packages[i], nil
		}
	}
	return nil, nil
}

func (f *fakePackageRepository) FindByName(ctx context.Context, name string) (*models.ConsultationPackage, error) {
	for i := range f.packages {
		if strings.EqualFold(f.packages[i].Name, name) {
			return &f.packages[i], nil
		}
	}
	return nil, nil
}

func (f *fakePackageRepository) CreatePackage(ctx context.Context, pkg *models.ConsultationPackage) (string, error) {
	f.nextID++
	pkg.ID = strings.Repeat("0", 23) + string(rune('a'+f.nextID))
	f.packages = append(f.packages, *pkg)
	return pkg.ID, nil
}

func (f *fakePackageRepository) UpdatePackage(ctx context.Context, pkg *models.ConsultationPackage) error {
	for i := range f.packages {
		if f.packages[i].ID == pkg.ID {
			f.packages[i] = *pkg
			return nil
		}
	}
	return nil
}

func (f *fakePackageRepository) DeletePackage(ctx context.Context, packageID string) error {
	for i := range f.packages {
		if f.packages[i].ID == packageID {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestListPackagesSeedsDefaults(t *testing.T) {
	repo := &fakePackageRepository{}
	uc := NewPackageUsecase(repo)

	result, err := uc.ListPackages(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result.Packages, 4)

	names := make([]string, 0, len(result.Packages))
	for _, pkg := range result.Packages {
		names = append(names, pkg.Name)
	}
	assert.Equal(t, []string{"General OPD", "Specialist Consultation", "Emergency", "Follow-up"}, names)
	assert.Equal(t, float64(500), result.Packages[0].Price)
	assert.Equal(t, float64(0), result.Packages[3].Price)

	t.Run("second list does not reseed", func(t *testing.T) {
		result, err := uc.ListPackages(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result.Packages, 4)
	})
}

func TestCreatePackage(t *testing.T) {
	repo := &fakePackageRepository{}
	uc := NewPackageUsecase(repo)

	result, err := uc.CreatePackage(context.Background(), &requests.SavePackage{Name: "Night OPD", Price: 650})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.ID)

	t.Run("duplicate name rejected case-insensitively", func(t *testing.T) {
		_, err := uc.CreatePackage(context.Background(), &requests.SavePackage{Name: "night opd", Price: 700})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestUpdatePackage(t *testing.T) {
	repo := &fakePackageRepository{}
	uc := NewPackageUsecase(repo)

	first, err := uc.CreatePackage(context.Background(), &requests.SavePackage{Name: "Night OPD", Price: 650})
	assert.NoError(t, err)
	second, err := uc.CreatePackage(context.Background(), &requests.SavePackage{Name: "Day OPD", Price: 400})
	assert.NoError(t, err)

	t.Run("rename onto an existing name is rejected", func(t *testing.T) {
		err := uc.UpdatePackage(context.Background(), second.ID, &requests.SavePackage{Name: "Night OPD", Price: 400})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("keeping own name is allowed", func(t *testing.T) {
		err := uc.UpdatePackage(context.Background(), first.ID, &requests.SavePackage{Name: "Night OPD", Price: 675})
		assert.NoError(t, err)
		updated, _ := repo.FindByID(context.Background(), first.ID)
		assert.Equal(t, float64(675), updated.Price)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		err := uc.UpdatePackage(context.Background(), "missing", &requests.SavePackage{Name: "X"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestDeletePackage(t *testing.T) {
	repo := &fakePackageRepository{}
	uc := NewPackageUsecase(repo)

	created, err := uc.CreatePackage(context.Background(), &requests.SavePackage{Name: "Night OPD", Price: 650})
	assert.NoError(t, err)

	assert.NoError(t, uc.DeletePackage(context.Background(), created.ID))

	err = uc.DeletePackage(context.Background(), created.ID)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 404, customErr.StatusCode)
}
