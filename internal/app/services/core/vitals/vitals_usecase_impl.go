package vitals

import (
	"context"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type vitalsUsecase struct {
	PatientRepository         contracts.PatientRepository
	VitalsRepository          contracts.VitalsRepository
	VitalDefinitionRepository contracts.VitalDefinitionRepository
	RedisRepository           contracts.RedisRepository
}

func NewVitalsUsecase(
	patientRepository contracts.PatientRepository,
	vitalsRepository contracts.VitalsRepository,
	vitalDefinitionRepository contracts.VitalDefinitionRepository,
	redisRepository contracts.RedisRepository,
) contracts.VitalsUsecase {
	return &vitalsUsecase{
		PatientRepository:         patientRepository,
		VitalsRepository:          vitalsRepository,
		VitalDefinitionRepository: vitalDefinitionRepository,
		RedisRepository:           redisRepository,
	}
}

func (uc *vitalsUsecase) SaveVitals(ctx context.Context, patientID string, request *requests.SaveVitals) (*responses.SaveVitals, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	visibility, err := uc.loadVisibility(ctx)
	if err != nil {
		return nil, err
	}

	// Derived readings are refreshed before visibility runs, otherwise a
	// recalculated BMI would restore the value the blanking just removed.
	state := Recalculate(request.Vitals)
	state = ApplyVisibility(state, visibility)
	if state.CustomVitals == nil {
		state.CustomVitals = []models.CustomVital{}
	}

	record := &models.VitalsRecord{
		PatientID:   patient.ID,
		PatientUHID: patient.UHID,
		PatientName: patient.FullName,
		Vitals:      state,
		RecordedAt:  time.Now(),
		RecordedBy:  constvars.VitalsRecordedByDefault,
		Status:      constvars.VitalsStatusCompleted,
	}

	recordID, err := uc.VitalsRepository.CreateRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	customBands, err := uc.bandCustomVitals(ctx, state.CustomVitals)
	if err != nil {
		return nil, err
	}

	return &responses.SaveVitals{
		ID:               recordID,
		BMI:              state.BMI,
		BMIBand:          BMIBand(state.BMI),
		MAP:              state.MAP,
		GCSTotal:         GCSTotal(state.GCSE, state.GCSV, state.GCSM),
		Advisories:       Advisories(state),
		CustomVitalBands: customBands,
	}, nil
}

// bandCustomVitals checks each saved custom reading against the bounds of its
// configured definition. Readings off the configured list, and definitions
// without bounds, carry no band.
func (uc *vitalsUsecase) bandCustomVitals(ctx context.Context, customVitals []models.CustomVital) ([]responses.CustomVitalBand, error) {
	if len(customVitals) == 0 {
		return nil, nil
	}

	definitions, err := uc.VitalDefinitionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	configured := make(map[string]models.VitalDefinition, len(definitions))
	for _, definition := range definitions {
		if definition.IsCustom {
			configured[definition.Key] = definition
		}
	}

	var bands []responses.CustomVitalBand
	for _, customVital := range customVitals {
		definition, ok := configured[utils.DeriveVitalKey(customVital.Name)]
		if !ok {
			continue
		}
		band := CategorizeCustomVital(customVital.Value, definition.MinVal, definition.MaxVal)
		if band == "" {
			continue
		}
		bands = append(bands, responses.CustomVitalBand{
			Name:  customVital.Name,
			Value: customVital.Value,
			Band:  band,
		})
	}
	return bands, nil
}

func (uc *vitalsUsecase) ListDefinitions(ctx context.Context) (*responses.VitalDefinitionList, error) {
	definitions, err := uc.VitalDefinitionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// First call on a fresh database seeds the standard rows.
	if len(definitions) == 0 {
		for _, definition := range StandardDefinitions(time.Now()) {
			seeded := definition
			if _, err := uc.VitalDefinitionRepository.CreateDefinition(ctx, &seeded); err != nil {
				return nil, err
			}
			definitions = append(definitions, seeded)
		}
	}

	return &responses.VitalDefinitionList{Definitions: definitions}, nil
}

func (uc *vitalsUsecase) CreateDefinition(ctx context.Context, request *requests.CreateVitalDefinition) (*responses.VitalDefinitionList, error) {
	key := utils.DeriveVitalKey(request.Label)

	existing, err := uc.VitalDefinitionRepository.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDefinitionExists(key)
	}

	definition := &models.VitalDefinition{
		Key:       key,
		Label:     request.Label,
		Unit:      request.Unit,
		MinVal:    request.MinVal,
		MaxVal:    request.MaxVal,
		IsCustom:  true,
		CreatedAt: time.Now(),
	}
	if _, err := uc.VitalDefinitionRepository.CreateDefinition(ctx, definition); err != nil {
		return nil, err
	}

	return uc.ListDefinitions(ctx)
}

func (uc *vitalsUsecase) UpdateDefinition(ctx context.Context, definitionID string, request *requests.UpdateVitalDefinition) error {
	definition, err := uc.VitalDefinitionRepository.FindByID(ctx, definitionID)
	if err != nil {
		return err
	}
	if definition == nil {
		return exceptions.ErrDefinitionNotFound(nil)
	}
	if !definition.IsCustom {
		return exceptions.ErrStandardVitalImmutable()
	}

	if request.Label != "" {
		definition.Label = request.Label
		definition.Key = utils.DeriveVitalKey(request.Label)
	}
	if request.Unit != "" {
		definition.Unit = request.Unit
	}
	if request.MinVal != nil {
		definition.MinVal = request.MinVal
	}
	if request.MaxVal != nil {
		definition.MaxVal = request.MaxVal
	}

	return uc.VitalDefinitionRepository.UpdateDefinition(ctx, definition)
}

func (uc *vitalsUsecase) RemoveDefinition(ctx context.Context, definitionID string, confirm bool) error {
	definition, err := uc.VitalDefinitionRepository.FindByID(ctx, definitionID)
	if err != nil {
		return err
	}
	if definition == nil {
		return exceptions.ErrDefinitionNotFound(nil)
	}
	if !definition.IsCustom {
		return exceptions.ErrStandardVitalImmutable()
	}
	if !confirm {
		return exceptions.ErrRemovalNeedsConfirmation()
	}

	return uc.VitalDefinitionRepository.DeleteDefinition(ctx, definitionID)
}

func (uc *vitalsUsecase) loadVisibility(ctx context.Context) (map[string]bool, error) {
	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyVitalsConfig)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return DefaultVisibility(), nil
	}

	visibility := make(map[string]bool)
	if err := json.Unmarshal([]byte(raw), &visibility); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return visibility, nil
}
