package fieldconfig

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type FieldConfigController struct {
	Log                *zap.Logger
	FieldConfigUsecase contracts.FieldConfigUsecase
}

func NewFieldConfigController(logger *zap.Logger, fieldConfigUsecase contracts.FieldConfigUsecase) *FieldConfigController {
	return &FieldConfigController{
		Log:                logger,
		FieldConfigUsecase: fieldConfigUsecase,
	}
}

func (ctrl *FieldConfigController) GetRegistrationConfig(w http.ResponseWriter, r *http.Request) {
	ctrl.get(w, r, ctrl.FieldConfigUsecase.GetRegistrationConfig)
}

func (ctrl *FieldConfigController) UpdateRegistrationConfig(w http.ResponseWriter, r *http.Request) {
	ctrl.update(w, r, ctrl.FieldConfigUsecase.UpdateRegistrationConfig)
}

func (ctrl *FieldConfigController) GetVitalsConfig(w http.ResponseWriter, r *http.Request) {
	ctrl.get(w, r, ctrl.FieldConfigUsecase.GetVitalsConfig)
}

func (ctrl *FieldConfigController) UpdateVitalsConfig(w http.ResponseWriter, r *http.Request) {
	ctrl.update(w, r, ctrl.FieldConfigUsecase.UpdateVitalsConfig)
}

func (ctrl *FieldConfigController) get(w http.ResponseWriter, r *http.Request, fetch func(context.Context) (*responses.FieldConfig, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := fetch(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfigFetchedSuccess, result)
}

func (ctrl *FieldConfigController) update(w http.ResponseWriter, r *http.Request, save func(context.Context, *requests.UpdateFieldConfig) (*responses.FieldConfig, error)) {
	request := new(requests.UpdateFieldConfig)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := save(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfigSavedSuccess, result)
}
