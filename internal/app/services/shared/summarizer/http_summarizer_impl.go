package summarizer

import (
	"context"
	"fmt"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/exceptions"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

type summarizeRequest struct {
	Intake *models.IntakeRecord `json:"intake,omitempty"`
	Vitals *models.VitalsRecord `json:"vitals,omitempty"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type httpSummarizer struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewHTTPSummarizer talks to an external summary backend. Calls beyond the
// configured per-minute budget are rejected instead of queued, so the
// consultation flow never blocks on the summarizer.
func NewHTTPSummarizer(internalConfig *config.InternalConfig) contracts.Summarizer {
	client := resty.New().
		SetBaseURL(internalConfig.Summarizer.BaseUrl).
		SetTimeout(time.Duration(internalConfig.Summarizer.TimeoutInSeconds) * time.Second)

	perMinute := internalConfig.Summarizer.RequestsPerMin
	if perMinute <= 0 {
		perMinute = 1
	}

	return &httpSummarizer{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

func (s *httpSummarizer) Summarize(ctx context.Context, intake *models.IntakeRecord, vitals *models.VitalsRecord) (string, error) {
	if !s.limiter.Allow() {
		return "", exceptions.ErrSummarizerThrottled(fmt.Errorf("summarizer budget exhausted"))
	}

	result := new(summarizeResponse)
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(&summarizeRequest{Intake: intake, Vitals: vitals}).
		SetResult(result).
		Post("/summarize")
	if err != nil {
		return "", exceptions.ErrSummarizerCall(err)
	}
	if resp.IsError() {
		return "", exceptions.ErrSummarizerCall(fmt.Errorf("summarizer returned status %d", resp.StatusCode()))
	}

	return result.Summary, nil
}
