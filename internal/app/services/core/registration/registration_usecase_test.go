package registration

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients []models.Patient
	nextID   int
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	f.nextID++
	if patient.ID == "" {
		patient.ID = "66cf2f1e8a4b3c2d1e0f00" + string(rune('a'+f.nextID))
	}
	f.patients = append(f.patients, *patient)
	return patient.ID, nil
}

func (f *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	for i := range f.patients {
		if f.patients[i].ID == patient.ID {
			f.patients[i] = *patient
			return nil
		}
	}
	return nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == patientID {
			return &f.patients[i], nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByContactNumber(ctx context.Context, contactNumber string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ContactNumber == contactNumber {
			return &f.patients[i], nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByUHID(ctx context.Context, uhid string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].UHID == strings.ToUpper(uhid) {
			return &f.patients[i], nil
		}
	}
	return nil, nil
}

type fakeDoctorRepository struct {
	doctors []models.Doctor
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return f.doctors, nil
}

type fakeCustomFieldRepository struct {
	labels []models.CustomFieldDefinition
}

func (f *fakeCustomFieldRepository) GetPersistedLabels(ctx context.Context) (*models.PersistedCustomLabels, error) {
	if f.labels == nil {
		return nil, nil
	}
	return &models.PersistedCustomLabels{ID: "persistedCustomLabels", Labels: f.labels}, nil
}

func (f *fakeCustomFieldRepository) UpsertLabels(ctx context.Context, labels []models.CustomFieldDefinition) error {
	f.labels = labels
	return nil
}

type fakeStorage struct {
	uploaded []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, reader io.Reader, objectName string, size int64, contentType string) (string, error) {
	f.uploaded = append(f.uploaded, objectName)
	return objectName, nil
}

func (f *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	return "https://storage.local/" + objectName, nil
}

type fakeEventPublisher struct {
	events []models.PatientRegisteredEvent
}

func (f *fakeEventPublisher) PublishPatientRegistered(ctx context.Context, event *models.PatientRegisteredEvent) error {
	f.events = append(f.events, *event)
	return nil
}

type registrationFixture struct {
	patients  *fakePatientRepository
	doctors   *fakeDoctorRepository
	labels    *fakeCustomFieldRepository
	storage   *fakeStorage
	publisher *fakeEventPublisher
	usecase   *registrationUsecase
}

func newFixture() *registrationFixture {
	f := &registrationFixture{
		patients:  &fakePatientRepository{},
		doctors:   &fakeDoctorRepository{},
		labels:    &fakeCustomFieldRepository{},
		storage:   &fakeStorage{},
		publisher: &fakeEventPublisher{},
	}
	f.usecase = &registrationUsecase{
		Log:                   zap.NewNop(),
		PatientRepository:     f.patients,
		DoctorRepository:      f.doctors,
		CustomFieldRepository: f.labels,
		Storage:               f.storage,
		EventPublisher:        f.publisher,
	}
	return f
}

func buildUpload(t *testing.T, fileName, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="`+fileName+`"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/register", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	headers := req.MultipartForm.File["files"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestCheckPatient(t *testing.T) {
	t.Run("rejects a lookup value under five characters", func(t *testing.T) {
		f := newFixture()
		_, err := f.usecase.CheckPatient(context.Background(), &requests.CheckPatient{SearchValue: "9876"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("not found returns a reset form with blank permanent fields", func(t *testing.T) {
		f := newFixture()
		f.labels.labels = []models.CustomFieldDefinition{{Label: "Referred By"}}

		result, err := f.usecase.CheckPatient(context.Background(), &requests.CheckPatient{SearchValue: "9876543210"})
		assert.NoError(t, err)
		assert.False(t, result.Found)
		assert.Nil(t, result.Patient)
		require.Len(t, result.Form.CustomFields, 1)
		assert.Equal(t, "Referred By", result.Form.CustomFields[0].Label)
		assert.Empty(t, result.Form.CustomFields[0].Value)
		assert.Equal(t, "OPD", result.Form.PatientType)
	})

	t.Run("found by contact number autofills the form as a review", func(t *testing.T) {
		f := newFixture()
		f.labels.labels = []models.CustomFieldDefinition{
			{Label: "Referred By"},
			{Label: "Insurance Provider"},
		}
		f.patients.patients = []models.Patient{{
			ID:            "66cf2f1e8a4b3c2d1e0f0001",
			UHID:          "UHID66CF2F1E",
			FullName:      "Asha Rao",
			ContactNumber: "9876543210",
			CustomFields: []models.PatientCustomField{
				{Label: "Referred By", Value: "Dr. Gupta"},
				{Label: "Camp Code", Value: "C-17", OneTime: true},
			},
		}}

		result, err := f.usecase.CheckPatient(context.Background(), &requests.CheckPatient{SearchValue: "9876543210"})
		assert.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "Review", result.Form.RegistrationType)
		assert.Equal(t, "Asha Rao", result.Form.FullName)

		// Permanent inputs span every definition; the unmatched stored
		// field comes back as one-time.
		require.Len(t, result.Form.CustomFields, 3)
		assert.Equal(t, "Dr. Gupta", result.Form.CustomFields[0].Value)
		assert.Equal(t, "Insurance Provider", result.Form.CustomFields[1].Label)
		assert.Empty(t, result.Form.CustomFields[1].Value)
		assert.Equal(t, "Camp Code", result.Form.CustomFields[2].Label)
		assert.True(t, result.Form.CustomFields[2].OneTime)
	})

	t.Run("falls back to a case-insensitive uhid lookup", func(t *testing.T) {
		f := newFixture()
		f.patients.patients = []models.Patient{{
			ID:   "66cf2f1e8a4b3c2d1e0f0001",
			UHID: "UHID66CF2F1E",
		}}

		result, err := f.usecase.CheckPatient(context.Background(), &requests.CheckPatient{SearchValue: "uhid66cf2f1e"})
		assert.NoError(t, err)
		assert.True(t, result.Found)
	})

	t.Run("record without a contact keeps the typed search value", func(t *testing.T) {
		f := newFixture()
		f.patients.patients = []models.Patient{{
			ID:       "66cf2f1e8a4b3c2d1e0f0001",
			UHID:     "UHID66CF2F1E",
			FullName: "Asha Rao",
		}}

		result, err := f.usecase.CheckPatient(context.Background(), &requests.CheckPatient{SearchValue: "UHID66CF2F1E"})
		assert.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "UHID66CF2F1E", result.Form.ContactNumber)
	})

	t.Run("stored contact wins over the typed search value", func(t *testing.T) {
		f := newFixture()
		f.patients.patients = []models.Patient{{
			ID:            "66cf2f1e8a4b3c2d1e0f0001",
			UHID:          "UHID66CF2F1E",
			ContactNumber: "9876543210",
		}}

		result, err := f.usecase.CheckPatient(context.Background(), &requests.CheckPatient{SearchValue: "UHID66CF2F1E"})
		assert.NoError(t, err)
		assert.Equal(t, "9876543210", result.Form.ContactNumber)
	})
}

func TestSaveDraft(t *testing.T) {
	t.Run("requires name and contact", func(t *testing.T) {
		f := newFixture()
		_, err := f.usecase.SaveDraft(context.Background(), &requests.RegistrationForm{FullName: "Asha Rao"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("new draft gets a placeholder uhid", func(t *testing.T) {
		f := newFixture()
		result, err := f.usecase.SaveDraft(context.Background(), &requests.RegistrationForm{
			FullName:      "Asha Rao",
			ContactNumber: "9876543210",
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.UHID, "DRAFT"))
		assert.Len(t, result.UHID, len("DRAFT")+6)

		saved, _ := f.patients.FindByID(context.Background(), result.ID)
		require.NotNil(t, saved)
		assert.Equal(t, "Draft", saved.Status)
		assert.Equal(t, result.UHID, saved.UHID)
	})

	t.Run("saving over an existing uhid updates in place", func(t *testing.T) {
		f := newFixture()
		first, err := f.usecase.SaveDraft(context.Background(), &requests.RegistrationForm{
			FullName:      "Asha Rao",
			ContactNumber: "9876543210",
		})
		require.NoError(t, err)

		second, err := f.usecase.SaveDraft(context.Background(), &requests.RegistrationForm{
			UHID:          first.UHID,
			FullName:      "Asha S Rao",
			ContactNumber: "9876543210",
		})
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, f.patients.patients, 1)
		assert.Equal(t, "Asha S Rao", f.patients.patients[0].FullName)
	})
}

func TestRegister(t *testing.T) {
	t.Run("lists every missing required field", func(t *testing.T) {
		f := newFixture()
		_, err := f.usecase.Register(context.Background(), &requests.RegistrationForm{}, nil)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "Full Name")
		assert.Contains(t, customErr.ClientMessage, "Contact Number")
		assert.Contains(t, customErr.ClientMessage, "Consulting Doctor")
	})

	t.Run("registers with uploads and publishes the event", func(t *testing.T) {
		f := newFixture()
		upload := buildUpload(t, "referral.pdf", "%PDF-1.4")

		result, err := f.usecase.Register(context.Background(), &requests.RegistrationForm{
			FullName:       "Asha Rao",
			ContactNumber:  "9876543210",
			DoctorAssigned: "Dr. Sarah Wilson",
			PackageName:    "General OPD",
		}, []*multipart.FileHeader{upload})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.UHID, "UHID"))

		saved, _ := f.patients.FindByID(context.Background(), result.ID)
		require.NotNil(t, saved)
		assert.Equal(t, "Waiting", saved.Status)
		assert.Equal(t, []string{"patients/" + result.ID + "/referral.pdf"}, saved.FileURLs)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, result.UHID, f.publisher.events[0].UHID)
		assert.Equal(t, "Dr. Sarah Wilson", f.publisher.events[0].DoctorAssigned)
	})

	t.Run("promoting a draft replaces the placeholder uhid", func(t *testing.T) {
		f := newFixture()
		draft, err := f.usecase.SaveDraft(context.Background(), &requests.RegistrationForm{
			FullName:      "Asha Rao",
			ContactNumber: "9876543210",
		})
		require.NoError(t, err)

		result, err := f.usecase.Register(context.Background(), &requests.RegistrationForm{
			UHID:           draft.UHID,
			FullName:       "Asha Rao",
			ContactNumber:  "9876543210",
			DoctorAssigned: "Dr. Sarah Wilson",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, draft.ID, result.ID)
		assert.True(t, strings.HasPrefix(result.UHID, "UHID"))
		assert.False(t, strings.HasPrefix(result.UHID, "DRAFT"))
		assert.Len(t, f.patients.patients, 1)
	})
}

func TestWorkflowGate(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.usecase.enter(workflowChecking))
	defer f.usecase.leave()

	_, err := f.usecase.SaveDraft(context.Background(), &requests.RegistrationForm{
		FullName:      "Asha Rao",
		ContactNumber: "9876543210",
	})
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 409, customErr.StatusCode)
}

func TestListDoctors(t *testing.T) {
	t.Run("falls back to the built-in list when the collection is empty", func(t *testing.T) {
		f := newFixture()
		result, err := f.usecase.ListDoctors(context.Background())
		assert.NoError(t, err)
		require.Len(t, result.Doctors, 3)
		assert.Equal(t, "Dr. Sarah Wilson", result.Doctors[0].Name)
	})

	t.Run("returns provisioned doctors as-is", func(t *testing.T) {
		f := newFixture()
		f.doctors.doctors = []models.Doctor{{ID: "d1", Name: "Dr. Meera Nair"}}
		result, err := f.usecase.ListDoctors(context.Background())
		assert.NoError(t, err)
		require.Len(t, result.Doctors, 1)
		assert.Equal(t, "Dr. Meera Nair", result.Doctors[0].Name)
	})
}
