package intake

import (
	"context"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
)

type intakeUsecase struct {
	PatientRepository contracts.PatientRepository
	IntakeRepository  contracts.IntakeRepository
}

func NewIntakeUsecase(
	patientRepository contracts.PatientRepository,
	intakeRepository contracts.IntakeRepository,
) contracts.IntakeUsecase {
	return &intakeUsecase{
		PatientRepository: patientRepository,
		IntakeRepository:  intakeRepository,
	}
}

func (uc *intakeUsecase) SubmitIntake(ctx context.Context, patientID string, request *requests.SubmitIntake) (*responses.SubmitIntake, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	state := request.Intake
	if len(state.Complaints) > constvars.MaxComplaints {
		return nil, exceptions.ErrTooManyComplaints()
	}
	if len(state.Allergies.Reaction) > constvars.MaxAllergyReactionLen {
		return nil, exceptions.ErrAllergyReactionTooLong()
	}

	state.Complaints = DeriveComplaints(state.Complaints)
	state.PastHistory.Illnesses = NormalizeIllnesses(state.PastHistory.Illnesses)
	state.PastHistory = DerivePastHistory(state.PastHistory, request.SurgeriesText, request.HospitalizationsText)

	record := &models.IntakeRecord{
		PatientID:   patient.ID,
		PatientUHID: patient.UHID,
		PatientName: patient.FullName,
		Intake:      state,
		Documents:   request.Documents,
		SubmittedAt: time.Now(),
		Status:      constvars.IntakeStatusSubmitted,
	}

	recordID, err := uc.IntakeRepository.CreateIntake(ctx, record)
	if err != nil {
		return nil, err
	}

	medications := CombinedMedications(state.ChronicConditions, state.PastHistory)

	return &responses.SubmitIntake{
		ID:                   recordID,
		RedFlags:             RedFlagComplaints(state.Complaints),
		UncontrolledWarnings: UncontrolledWarnings(state.ChronicConditions),
		DrugConflicts:        DrugConflicts(state.Allergies, medications),
	}, nil
}
