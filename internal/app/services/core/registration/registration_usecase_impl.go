package registration

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync/atomic"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Workflow states. Lookup, draft save and registration share one gate so a
// double-clicked button cannot run two writes against the same form.
const (
	workflowIdle int32 = iota
	workflowChecking
	workflowDrafting
	workflowRegistering
)

type registrationUsecase struct {
	Log                   *zap.Logger
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	CustomFieldRepository contracts.CustomFieldConfigRepository
	Storage               contracts.Storage
	EventPublisher        contracts.EventPublisher

	actionStatus atomic.Int32
}

func NewRegistrationUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	customFieldRepository contracts.CustomFieldConfigRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
) contracts.RegistrationUsecase {
	return &registrationUsecase{
		Log:                   logger,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		CustomFieldRepository: customFieldRepository,
		Storage:               storage,
		EventPublisher:        eventPublisher,
	}
}

func (uc *registrationUsecase) enter(state int32) error {
	if !uc.actionStatus.CompareAndSwap(workflowIdle, state) {
		return exceptions.ErrWorkflowBusy(nil)
	}
	return nil
}

func (uc *registrationUsecase) leave() {
	uc.actionStatus.Store(workflowIdle)
}

func (uc *registrationUsecase) CheckPatient(ctx context.Context, request *requests.CheckPatient) (*responses.CheckPatient, error) {
	if err := uc.enter(workflowChecking); err != nil {
		return nil, err
	}
	defer uc.leave()

	searchValue := strings.TrimSpace(request.SearchValue)
	if len(searchValue) < constvars.PatientLookupMinLength {
		return nil, exceptions.ErrLookupValueTooShort()
	}

	definitions, err := uc.loadDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByContactNumber(ctx, searchValue)
	if err != nil {
		return nil, exceptions.ErrPatientLookup(err)
	}
	if patient == nil {
		patient, err = uc.PatientRepository.FindByUHID(ctx, searchValue)
		if err != nil {
			return nil, exceptions.ErrPatientLookup(err)
		}
	}

	if patient == nil {
		return &responses.CheckPatient{
			Found: false,
			Form:  resetForm(definitions),
		}, nil
	}

	return &responses.CheckPatient{
		Found:   true,
		Patient: patient,
		Form:    autofillForm(patient, definitions, searchValue),
	}, nil
}

func (uc *registrationUsecase) SaveDraft(ctx context.Context, request *requests.RegistrationForm) (*responses.SavePatient, error) {
	if err := uc.enter(workflowDrafting); err != nil {
		return nil, err
	}
	defer uc.leave()

	if strings.TrimSpace(request.FullName) == "" || strings.TrimSpace(request.ContactNumber) == "" {
		return nil, exceptions.ErrDraftRequiresNameAndContact()
	}

	definitions, err := uc.loadDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	patient := buildPatient(request)
	patient.Status = constvars.PatientStatusDraft

	existing, err := uc.resolveExisting(ctx, request.UHID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		patient.ID = existing.ID
		patient.UHID = existing.UHID
		patient.CreatedAt = existing.CreatedAt
		patient.SetUpdatedAt()
		if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
			return nil, err
		}
	} else {
		patient.SetCreatedAtUpdatedAt()
		recordID, err := uc.PatientRepository.CreatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		patient.UHID = utils.BuildDraftUHID(recordID)
		if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
			return nil, err
		}
	}

	return &responses.SavePatient{
		ID:   patient.ID,
		UHID: patient.UHID,
		Form: resetForm(definitions),
	}, nil
}

func (uc *registrationUsecase) Register(ctx context.Context, request *requests.RegistrationForm, files []*multipart.FileHeader) (*responses.SavePatient, error) {
	if err := uc.enter(workflowRegistering); err != nil {
		return nil, err
	}
	defer uc.leave()

	var missing []string
	if strings.TrimSpace(request.FullName) == "" {
		missing = append(missing, "Full Name")
	}
	if strings.TrimSpace(request.ContactNumber) == "" {
		missing = append(missing, "Contact Number")
	}
	if strings.TrimSpace(request.DoctorAssigned) == "" {
		missing = append(missing, "Consulting Doctor")
	}
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(strings.Join(missing, ", "))
	}

	definitions, err := uc.loadDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	patient := buildPatient(request)
	patient.Status = constvars.PatientStatusWaiting

	existing, err := uc.resolveExisting(ctx, request.UHID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		patient.ID = existing.ID
		patient.UHID = existing.UHID
		patient.CreatedAt = existing.CreatedAt
		patient.FileURLs = existing.FileURLs
		patient.SetUpdatedAt()
	} else {
		patient.SetCreatedAtUpdatedAt()
		if _, err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
			return nil, err
		}
	}

	// Uploads go one at a time so a failure surfaces before the record is
	// marked waiting with missing attachments.
	for _, fileHeader := range files {
		objectName, err := uc.uploadAttachment(ctx, patient.ID, fileHeader)
		if err != nil {
			return nil, err
		}
		patient.FileURLs = append(patient.FileURLs, objectName)
	}

	// Drafts carry a placeholder UHID; a full registration always gets the
	// permanent one.
	if patient.UHID == "" || strings.HasPrefix(patient.UHID, constvars.UHIDDraftPrefix) {
		patient.UHID = utils.BuildUHID(patient.ID)
	}

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	event := &models.PatientRegisteredEvent{
		PatientID:      patient.ID,
		UHID:           patient.UHID,
		FullName:       patient.FullName,
		DoctorAssigned: patient.DoctorAssigned,
		PackageName:    patient.PackageName,
		RegisteredAt:   time.Now(),
	}
	if err := uc.EventPublisher.PublishPatientRegistered(ctx, event); err != nil {
		// The registration itself succeeded; a dead broker should not fail
		// the desk flow.
		uc.Log.Warn("patient registered event not published",
			zap.String("patient_id", patient.ID),
			zap.Error(err),
		)
	} else {
		utils.LogBusinessEvent(uc.Log, "patient_registered", utils.GetRequestID(ctx),
			zap.String("patient_id", patient.ID),
			zap.String("uhid", patient.UHID),
			zap.String("doctor", patient.DoctorAssigned),
		)
	}

	return &responses.SavePatient{
		ID:   patient.ID,
		UHID: patient.UHID,
		Form: resetForm(definitions),
	}, nil
}

func (uc *registrationUsecase) ListDoctors(ctx context.Context) (*responses.DoctorList, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		doctors = fallbackDoctors()
	}
	return &responses.DoctorList{Doctors: doctors}, nil
}

// fallbackDoctors keeps the doctor dropdown usable before the doctors
// collection is provisioned.
func fallbackDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "doc1", Name: "Dr. Sarah Wilson"},
		{ID: "doc2", Name: "Dr. Michael Chen"},
		{ID: "doc3", Name: "Dr. John Doe"},
	}
}

// resolveExisting maps a submitted UHID back to its record, so saving over a
// looked-up patient or a draft updates in place instead of duplicating.
func (uc *registrationUsecase) resolveExisting(ctx context.Context, uhid string) (*models.Patient, error) {
	if strings.TrimSpace(uhid) == "" {
		return nil, nil
	}
	existing, err := uc.PatientRepository.FindByUHID(ctx, uhid)
	if err != nil {
		return nil, exceptions.ErrPatientLookup(err)
	}
	return existing, nil
}

func (uc *registrationUsecase) uploadAttachment(ctx context.Context, recordID string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	objectName := utils.BuildPatientObjectPath(recordID, fileHeader.Filename)
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	return uc.Storage.UploadFile(ctx, file, objectName, fileHeader.Size, contentType)
}

func (uc *registrationUsecase) loadDefinitions(ctx context.Context) ([]models.CustomFieldDefinition, error) {
	persisted, err := uc.CustomFieldRepository.GetPersistedLabels(ctx)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		return nil, nil
	}
	return persisted.Labels, nil
}

// resetForm returns the blank form, with one empty input per permanent
// definition so the labels survive the reset.
func resetForm(definitions []models.CustomFieldDefinition) models.RegistrationForm {
	form := models.NewRegistrationForm()
	form.CustomFields = blankCustomFields(definitions)
	return form
}

func blankCustomFields(definitions []models.CustomFieldDefinition) []models.FormCustomField {
	fields := make([]models.FormCustomField, 0, len(definitions))
	for i, definition := range definitions {
		fields = append(fields, models.FormCustomField{
			ID:          fmt.Sprintf("pf-%d", i+1),
			Label:       definition.Label,
			Placeholder: definition.Placeholder,
		})
	}
	return fields
}

// autofillForm fills the form from a found record. The stored custom fields
// are partitioned by label: ones matching a persisted definition fill the
// permanent inputs, which are expanded over every definition so labels with
// no stored value still render blank; the rest come back as one-time fields.
func autofillForm(patient *models.Patient, definitions []models.CustomFieldDefinition, searchValue string) models.RegistrationForm {
	form := models.RegistrationForm{
		UHID:              patient.UHID,
		Salutation:        patient.Salutation,
		FullName:          patient.FullName,
		Gender:            patient.Gender,
		DOB:               patient.DOB,
		Age:               patient.Age,
		ContactNumber:     patient.ContactNumber,
		AlternateMobile:   patient.AlternateMobile,
		Email:             patient.Email,
		AbhaID:            patient.AbhaID,
		BloodGroup:        patient.BloodGroup,
		Occupation:        patient.Occupation,
		MaritalStatus:     patient.MaritalStatus,
		PreferredLanguage: patient.PreferredLanguage,
		AddressLine1:      patient.AddressLine1,
		Area:              patient.Area,
		District:          patient.District,
		PinCode:           patient.PinCode,
		State:             patient.State,
		RegistrationType:  "Review",
		PatientType:       patient.PatientType,
		VisitType:         patient.VisitType,
		PaymentMethod:     patient.PaymentMethod,
		DoctorAssigned:    patient.DoctorAssigned,
		PackageName:       patient.PackageName,
	}

	// A record saved without a contact number keeps what the desk typed
	// into the search box.
	if form.ContactNumber == "" {
		form.ContactNumber = searchValue
	}

	known := make(map[string]bool, len(definitions))
	for _, definition := range definitions {
		known[strings.ToLower(definition.Label)] = true
	}

	values := make(map[string]string)
	var oneTime []models.FormCustomField
	for i, field := range patient.CustomFields {
		if known[strings.ToLower(field.Label)] {
			values[strings.ToLower(field.Label)] = field.Value
		} else {
			oneTime = append(oneTime, models.FormCustomField{
				ID:      fmt.Sprintf("ot-%d", i+1),
				Label:   field.Label,
				Value:   field.Value,
				OneTime: true,
			})
		}
	}

	fields := blankCustomFields(definitions)
	for i := range fields {
		fields[i].Value = values[strings.ToLower(fields[i].Label)]
	}
	form.CustomFields = append(fields, oneTime...)
	return form
}

func buildPatient(request *requests.RegistrationForm) *models.Patient {
	customFields := make([]models.PatientCustomField, 0, len(request.CustomFields))
	for _, field := range request.CustomFields {
		// Blank permanent inputs are not stored; blank one-time inputs
		// carry no information at all.
		if strings.TrimSpace(field.Value) == "" {
			continue
		}
		customFields = append(customFields, models.PatientCustomField{
			Label:   field.Label,
			Value:   field.Value,
			OneTime: field.OneTime,
		})
	}

	return &models.Patient{
		UHID:              strings.ToUpper(strings.TrimSpace(request.UHID)),
		Salutation:        request.Salutation,
		FullName:          strings.TrimSpace(request.FullName),
		Gender:            request.Gender,
		DOB:               request.DOB,
		Age:               request.Age,
		ContactNumber:     strings.TrimSpace(request.ContactNumber),
		AlternateMobile:   request.AlternateMobile,
		Email:             request.Email,
		AbhaID:            request.AbhaID,
		BloodGroup:        request.BloodGroup,
		Occupation:        request.Occupation,
		MaritalStatus:     request.MaritalStatus,
		PreferredLanguage: request.PreferredLanguage,
		AddressLine1:      request.AddressLine1,
		Area:              request.Area,
		District:          request.District,
		PinCode:           request.PinCode,
		State:             request.State,
		RegistrationType:  request.RegistrationType,
		PatientType:       request.PatientType,
		VisitType:         request.VisitType,
		PaymentMethod:     request.PaymentMethod,
		DoctorAssigned:    request.DoctorAssigned,
		PackageName:       request.PackageName,
		CustomFields:      customFields,
	}
}
