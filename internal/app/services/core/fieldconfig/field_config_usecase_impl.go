package fieldconfig

import (
	"context"

	"intake-service/internal/app/contracts"
	vitals "intake-service/internal/app/services/core/vitals"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type fieldConfigUsecase struct {
	RedisRepository           contracts.RedisRepository
	VitalDefinitionRepository contracts.VitalDefinitionRepository
}

func NewFieldConfigUsecase(
	redisRepository contracts.RedisRepository,
	vitalDefinitionRepository contracts.VitalDefinitionRepository,
) contracts.FieldConfigUsecase {
	return &fieldConfigUsecase{
		RedisRepository:           redisRepository,
		VitalDefinitionRepository: vitalDefinitionRepository,
	}
}

func (uc *fieldConfigUsecase) GetRegistrationConfig(ctx context.Context) (*responses.FieldConfig, error) {
	fields, err := uc.loadConfig(ctx, constvars.RedisKeyRegistrationFieldsConfig)
	if err != nil {
		return nil, err
	}
	return uc.buildRegistrationResponse(fields), nil
}

func (uc *fieldConfigUsecase) UpdateRegistrationConfig(ctx context.Context, request *requests.UpdateFieldConfig) (*responses.FieldConfig, error) {
	known := make(map[string]struct{}, len(RegistrationFieldRegistry))
	for _, field := range RegistrationFieldRegistry {
		known[field.Key] = struct{}{}
	}

	// Unknown keys are dropped so the consulting doctor (and anything else
	// off the registry) can never be configured away.
	fields := make(map[string]bool)
	for key, visible := range request.Fields {
		if _, ok := known[key]; ok {
			fields[key] = visible
		}
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyRegistrationFieldsConfig, fields, 0); err != nil {
		return nil, err
	}
	return uc.buildRegistrationResponse(fields), nil
}

func (uc *fieldConfigUsecase) GetVitalsConfig(ctx context.Context) (*responses.FieldConfig, error) {
	fields, err := uc.loadConfig(ctx, constvars.RedisKeyVitalsConfig)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		fields = vitals.DefaultVisibility()
	}
	return &responses.FieldConfig{Fields: fields}, nil
}

func (uc *fieldConfigUsecase) UpdateVitalsConfig(ctx context.Context, request *requests.UpdateFieldConfig) (*responses.FieldConfig, error) {
	// Standard sections plus the key of every configured custom vital are
	// switchable; anything else is dropped.
	known := vitals.DefaultVisibility()
	definitions, err := uc.VitalDefinitionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, definition := range definitions {
		if definition.IsCustom {
			known[definition.Key] = true
		}
	}

	fields := make(map[string]bool)
	for key, visible := range request.Fields {
		if _, ok := known[key]; ok {
			fields[key] = visible
		}
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyVitalsConfig, fields, 0); err != nil {
		return nil, err
	}
	return &responses.FieldConfig{Fields: fields}, nil
}

func (uc *fieldConfigUsecase) loadConfig(ctx context.Context, key string) (map[string]bool, error) {
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]bool)
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}
	return fields, nil
}

func (uc *fieldConfigUsecase) buildRegistrationResponse(fields map[string]bool) *responses.FieldConfig {
	registry := make([]responses.RegistrationFieldInfo, 0, len(RegistrationFieldRegistry))
	for _, field := range RegistrationFieldRegistry {
		registry = append(registry, responses.RegistrationFieldInfo{
			Key:   field.Key,
			Label: field.Label,
			Group: field.Group,
		})
	}

	return &responses.FieldConfig{
		Fields:   fields,
		Sections: SectionVisibility(fields),
		Registry: registry,
	}
}
