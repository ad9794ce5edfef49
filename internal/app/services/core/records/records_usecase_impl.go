package records

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
)

var recordCategories = map[string]bool{
	constvars.RecordCategoryLabReports:         true,
	constvars.RecordCategoryRadiology:          true,
	constvars.RecordCategoryPrescriptions:      true,
	constvars.RecordCategoryDischargeSummaries: true,
	constvars.RecordCategoryOther:              true,
}

type recordsUsecase struct {
	TextExtractor  contracts.TextExtractor
	InternalConfig *config.InternalConfig
}

func NewRecordsUsecase(textExtractor contracts.TextExtractor, internalConfig *config.InternalConfig) contracts.RecordsUsecase {
	return &recordsUsecase{
		TextExtractor:  textExtractor,
		InternalConfig: internalConfig,
	}
}

func (uc *recordsUsecase) ExtractText(ctx context.Context, category string, fileHeader *multipart.FileHeader) (*responses.ExtractedText, error) {
	if !recordCategories[category] {
		return nil, exceptions.ErrInvalidRecordCategory(category)
	}

	maxSize := uc.InternalConfig.Minio.UploadMaxSizeInMB
	if fileHeader.Size > maxSize*1024*1024 {
		return nil, exceptions.ErrFileTooLarge(maxSize)
	}

	mimeType := fileHeader.Header.Get(constvars.HeaderContentType)
	if mimeType == "" {
		mimeType = mimeTypeFromExtension(fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, exceptions.ErrTextExtraction(err)
	}
	defer file.Close()

	text, err := uc.TextExtractor.Extract(ctx, fileHeader.Filename, mimeType, file, fileHeader.Size)
	if err != nil {
		return nil, err
	}

	return &responses.ExtractedText{
		FileName: fileHeader.Filename,
		MimeType: mimeType,
		Category: category,
		Text:     text,
	}, nil
}

// mimeTypeFromExtension covers browsers that omit a part Content-Type.
func mimeTypeFromExtension(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return constvars.MIMEApplicationPDF
	case ".docx":
		return constvars.MIMEApplicationDocx
	case ".txt":
		return constvars.MIMETextPlain
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return ""
	}
}
