package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"intake-service/internal/pkg/dto/responses"
)

type TextExtractor interface {
	Extract(ctx context.Context, fileName, mimeType string, reader io.Reader, size int64) (string, error)
}

type RecordsUsecase interface {
	ExtractText(ctx context.Context, category string, fileHeader *multipart.FileHeader) (*responses.ExtractedText, error)
}
