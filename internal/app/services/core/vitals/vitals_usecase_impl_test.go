package vitals

import (
	"context"
	"testing"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientRepository struct {
	patient *models.Patient
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return patient.ID, nil
}

func (f *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if f.patient != nil && f.patient.ID == patientID {
		return f.patient, nil
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByContactNumber(ctx context.Context, contactNumber string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindByUHID(ctx context.Context, uhid string) (*models.Patient, error) {
	return nil, nil
}

type fakeVitalsRepository struct {
	records []models.VitalsRecord
}

func (f *fakeVitalsRepository) CreateRecord(ctx context.Context, record *models.VitalsRecord) (string, error) {
	record.ID = "66cf2f1e8a4b3c2d1e0f0101"
	f.records = append(f.records, *record)
	return record.ID, nil
}

func (f *fakeVitalsRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.VitalsRecord, error) {
	if len(f.records) == 0 {
		return nil, nil
	}
	return &f.records[len(f.records)-1], nil
}

type fakeVitalDefinitionRepository struct {
	definitions []models.VitalDefinition
}

func (f *fakeVitalDefinitionRepository) FindAll(ctx context.Context) ([]models.VitalDefinition, error) {
	return f.definitions, nil
}

func (f *fakeVitalDefinitionRepository) FindByID(ctx context.Context, definitionID string) (*models.VitalDefinition, error) {
	for i := range f.definitions {
		if f.definitions[i].ID == definitionID {
			return &f.definitions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeVitalDefinitionRepository) FindByKey(ctx context.Context, key string) (*models.VitalDefinition, error) {
	for i := range f.definitions {
		if f.definitions[i].Key == key {
			return &f.definitions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeVitalDefinitionRepository) CreateDefinition(ctx context.Context, definition *models.VitalDefinition) (string, error) {
	definition.ID = "66cf2f1e8a4b3c2d1e0f0201"
	f.definitions = append(f.definitions, *definition)
	return definition.ID, nil
}

func (f *fakeVitalDefinitionRepository) UpdateDefinition(ctx context.Context, definition *models.VitalDefinition) error {
	for i := range f.definitions {
		if f.definitions[i].ID == definition.ID {
			f.definitions[i] = *definition
			return nil
		}
	}
	return nil
}

func (f *fakeVitalDefinitionRepository) DeleteDefinition(ctx context.Context, definitionID string) error {
	var kept []models.VitalDefinition
	for _, definition := range f.definitions {
		if definition.ID != definitionID {
			kept = append(kept, definition)
		}
	}
	f.definitions = kept
	return nil
}

type fakeRedisRepository struct {
	values map[string]string
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	if s, ok := value.(string); ok {
		f.values[key] = s
	}
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

type vitalsFixture struct {
	patients    *fakePatientRepository
	records     *fakeVitalsRepository
	definitions *fakeVitalDefinitionRepository
	redis       *fakeRedisRepository
	usecase     *vitalsUsecase
}

func newVitalsFixture() *vitalsFixture {
	f := &vitalsFixture{
		patients: &fakePatientRepository{patient: &models.Patient{
			ID:       "66cf2f1e8a4b3c2d1e0f0001",
			UHID:     "UHID66CF2F1E",
			FullName: "Asha Rao",
		}},
		records:     &fakeVitalsRepository{},
		definitions: &fakeVitalDefinitionRepository{},
		redis:       &fakeRedisRepository{},
	}
	f.usecase = &vitalsUsecase{
		PatientRepository:         f.patients,
		VitalsRepository:          f.records,
		VitalDefinitionRepository: f.definitions,
		RedisRepository:           f.redis,
	}
	return f
}

func TestSaveVitalsVisibility(t *testing.T) {
	t.Run("disabled bmi stays blank even though weight and height are set", func(t *testing.T) {
		f := newVitalsFixture()
		f.redis.values = map[string]string{constvars.RedisKeyVitalsConfig: `{"bmi":false}`}

		result, err := f.usecase.SaveVitals(context.Background(), "66cf2f1e8a4b3c2d1e0f0001", &requests.SaveVitals{
			Vitals: models.VitalsState{Weight: "70", Height: "175"},
		})
		require.NoError(t, err)

		assert.Equal(t, "", result.BMI)
		require.Len(t, f.records.records, 1)
		assert.Equal(t, "", f.records.records[0].Vitals.BMI)
		assert.Equal(t, "70", f.records.records[0].Vitals.Weight)
	})

	t.Run("disabled bp drops the readings and the derived map", func(t *testing.T) {
		f := newVitalsFixture()
		f.redis.values = map[string]string{constvars.RedisKeyVitalsConfig: `{"bp":false}`}

		result, err := f.usecase.SaveVitals(context.Background(), "66cf2f1e8a4b3c2d1e0f0001", &requests.SaveVitals{
			Vitals: models.VitalsState{BPSystolic: "120", BPDiastolic: "80"},
		})
		require.NoError(t, err)

		assert.Equal(t, "", result.MAP)
		assert.Equal(t, "", f.records.records[0].Vitals.BPSystolic)
	})

	t.Run("a custom vital hidden on its own key is not saved", func(t *testing.T) {
		f := newVitalsFixture()
		f.redis.values = map[string]string{constvars.RedisKeyVitalsConfig: `{"blood_sugar_fasting":false}`}

		_, err := f.usecase.SaveVitals(context.Background(), "66cf2f1e8a4b3c2d1e0f0001", &requests.SaveVitals{
			Vitals: models.VitalsState{CustomVitals: []models.CustomVital{
				{ID: "cv-1", Name: "Blood Sugar Fasting", Value: "98", Unit: "mg/dL"},
				{ID: "cv-2", Name: "Peak Flow", Value: "450", Unit: "L/min"},
			}},
		})
		require.NoError(t, err)

		saved := f.records.records[0].Vitals.CustomVitals
		require.Len(t, saved, 1)
		assert.Equal(t, "Peak Flow", saved[0].Name)
	})
}

func TestSaveVitalsCustomBands(t *testing.T) {
	f := newVitalsFixture()
	f.definitions.definitions = []models.VitalDefinition{
		{ID: "d1", Key: "blood_sugar_fasting", Label: "Blood Sugar Fasting", Unit: "mg/dL", MinVal: f64(70), MaxVal: f64(110), IsCustom: true},
		{ID: "d2", Key: "peak_flow", Label: "Peak Flow", Unit: "L/min", IsCustom: true},
	}

	result, err := f.usecase.SaveVitals(context.Background(), "66cf2f1e8a4b3c2d1e0f0001", &requests.SaveVitals{
		Vitals: models.VitalsState{CustomVitals: []models.CustomVital{
			{ID: "cv-1", Name: "Blood Sugar Fasting", Value: "140", Unit: "mg/dL"},
			{ID: "cv-2", Name: "Peak Flow", Value: "450", Unit: "L/min"},
		}},
	})
	require.NoError(t, err)

	// Only the bounded definition gets a band, and 140 sits above its max.
	require.Len(t, result.CustomVitalBands, 1)
	assert.Equal(t, "Blood Sugar Fasting", result.CustomVitalBands[0].Name)
	assert.Equal(t, constvars.VitalCategoryWarning, result.CustomVitalBands[0].Band)
}

func f64(v float64) *float64 { return &v }
