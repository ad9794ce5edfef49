package registration

import (
	"context"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRegistrationUsecase struct {
	checkResult *responses.CheckPatient
}

func (f *fakeRegistrationUsecase) CheckPatient(ctx context.Context, request *requests.CheckPatient) (*responses.CheckPatient, error) {
	return f.checkResult, nil
}

func (f *fakeRegistrationUsecase) SaveDraft(ctx context.Context, request *requests.RegistrationForm) (*responses.SavePatient, error) {
	return &responses.SavePatient{}, nil
}

func (f *fakeRegistrationUsecase) Register(ctx context.Context, request *requests.RegistrationForm, files []*multipart.FileHeader) (*responses.SavePatient, error) {
	return &responses.SavePatient{}, nil
}

func (f *fakeRegistrationUsecase) ListDoctors(ctx context.Context) (*responses.DoctorList, error) {
	return &responses.DoctorList{}, nil
}

func TestCheckPatientMessages(t *testing.T) {
	callCheck := func(t *testing.T, found bool) responses.ResponseDTO {
		t.Helper()
		ctrl := NewRegistrationController(zap.NewNop(), &fakeRegistrationUsecase{
			checkResult: &responses.CheckPatient{Found: found},
		})

		req := httptest.NewRequest("POST", "/patients/check", strings.NewReader(`{"searchValue":"9876543210"}`))
		rec := httptest.NewRecorder()
		ctrl.CheckPatient(rec, req)

		require.Equal(t, 200, rec.Code)
		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("found uses the found message", func(t *testing.T) {
		body := callCheck(t, true)
		assert.Equal(t, constvars.PatientFoundSuccess, body.Message)
	})

	t.Run("not found uses the reset message", func(t *testing.T) {
		body := callCheck(t, false)
		assert.Equal(t, constvars.PatientNotFoundSuccess, body.Message)
	})
}
