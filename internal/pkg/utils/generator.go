package utils

import (
	"fmt"
	"strings"

	"intake-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// BuildDraftUHID derives a placeholder UHID from the record id so drafts are
// findable before the patient is fully registered.
func BuildDraftUHID(recordID string) string {
	return constvars.UHIDDraftPrefix + upperPrefix(recordID, constvars.UHIDDraftIDLength)
}

func BuildUHID(recordID string) string {
	return constvars.UHIDPrefix + upperPrefix(recordID, constvars.UHIDRecordIDLength)
}

func upperPrefix(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return strings.ToUpper(s)
}

// DeriveVitalKey turns a display label into a stable definition key, e.g.
// "Blood Sugar (Fasting)" becomes "blood_sugar__fasting_".
func DeriveVitalKey(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// BuildPatientObjectPath places uploads under the owning patient record.
func BuildPatientObjectPath(recordID, fileName string) string {
	return fmt.Sprintf(constvars.StoragePatientPathFormat, recordID, fileName)
}
