package customfields

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomFieldController struct {
	Log                *zap.Logger
	CustomFieldUsecase contracts.CustomFieldUsecase
}

func NewCustomFieldController(logger *zap.Logger, customFieldUsecase contracts.CustomFieldUsecase) *CustomFieldController {
	return &CustomFieldController{
		Log:                logger,
		CustomFieldUsecase: customFieldUsecase,
	}
}

func (ctrl *CustomFieldController) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CustomFieldUsecase.ListDefinitions(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DefinitionsFetchedSuccess, result)
}

func (ctrl *CustomFieldController) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCustomFieldDefinition)
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

	result, err := ctrl.CustomFieldUsecase.CreateDefinition(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DefinitionCreatedSuccess, result)
}

func (ctrl *CustomFieldController) RemoveDefinition(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, constvars.URLParamLabel)

	request := new(requests.RemoveCustomFieldDefinition)
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&request)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CustomFieldUsecase.RemoveDefinition(ctx, label, request.Confirm)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DefinitionRemovedSuccess, result)
}
