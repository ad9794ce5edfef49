package records

import (
	"context"
	"net/http"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const multipartMaxMemory = 32 << 20

type RecordsController struct {
	Log            *zap.Logger
	RecordsUsecase contracts.RecordsUsecase
}

func NewRecordsController(logger *zap.Logger, recordsUsecase contracts.RecordsUsecase) *RecordsController {
	return &RecordsController{
		Log:            logger,
		RecordsUsecase: recordsUsecase,
	}
}

// ExtractRecords accepts a multipart form with a "category" value and one or
// more "files" parts, and returns the extracted text for each file.
func (ctrl *RecordsController) ExtractRecords(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	category := r.FormValue("category")
	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) > constvars.MaxFilesPerCategory {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTooManyFiles())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	extracted := make([]responses.ExtractedText, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		result, err := ctrl.RecordsUsecase.ExtractText(ctx, category, fileHeader)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		extracted = append(extracted, *result)
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordExtractedSuccess, extracted)
}
