package summary

import (
	"context"
	"net/http"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SummaryController struct {
	Log            *zap.Logger
	SummaryUsecase contracts.SummaryUsecase
}

func NewSummaryController(logger *zap.Logger, summaryUsecase contracts.SummaryUsecase) *SummaryController {
	return &SummaryController{
		Log:            logger,
		SummaryUsecase: summaryUsecase,
	}
}

func (ctrl *SummaryController) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	// Summaries can call an external backend, so this handler gets a wider
	// deadline than the storage-only ones.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.SummaryUsecase.GenerateSummary(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SummaryGeneratedSuccess, result)
}
