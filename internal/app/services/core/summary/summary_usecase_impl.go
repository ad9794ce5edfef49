package summary

import (
	"context"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
)

type summaryUsecase struct {
	PatientRepository contracts.PatientRepository
	IntakeRepository  contracts.IntakeRepository
	VitalsRepository  contracts.VitalsRepository
	Summarizer        contracts.Summarizer
}

func NewSummaryUsecase(
	patientRepository contracts.PatientRepository,
	intakeRepository contracts.IntakeRepository,
	vitalsRepository contracts.VitalsRepository,
	summarizer contracts.Summarizer,
) contracts.SummaryUsecase {
	return &summaryUsecase{
		PatientRepository: patientRepository,
		IntakeRepository:  intakeRepository,
		VitalsRepository:  vitalsRepository,
		Summarizer:        summarizer,
	}
}

func (uc *summaryUsecase) GenerateSummary(ctx context.Context, patientID string) (*responses.Summary, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	// The latest captured data feeds the summary. Either record may be
	// absent; the summarizer handles nil sections.
	intake, err := uc.IntakeRepository.FindLatestByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	vitals, err := uc.VitalsRepository.FindLatestByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	raw, err := uc.Summarizer.Summarize(ctx, intake, vitals)
	if err != nil {
		return nil, err
	}

	return &responses.Summary{
		Raw:    raw,
		Blocks: FormatSummary(raw),
	}, nil
}
