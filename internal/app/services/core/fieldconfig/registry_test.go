package fieldconfig

import (
	"testing"

	"intake-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestIsFieldVisible(t *testing.T) {
	fields := map[string]bool{
		"email":      false,
		"bloodGroup": true,
	}

	assert.False(t, IsFieldVisible(fields, "email"))
	assert.True(t, IsFieldVisible(fields, "bloodGroup"))

	t.Run("absent keys default to visible", func(t *testing.T) {
		assert.True(t, IsFieldVisible(fields, "occupation"))
	})
}

func TestDoctorAssignedIsNotConfigurable(t *testing.T) {
	for _, field := range RegistrationFieldRegistry {
		assert.NotEqual(t, "doctorAssigned", field.Key)
	}

	// Even an explicit false has no effect because the key is off-registry.
	fields := map[string]bool{"doctorAssigned": false}
	assert.True(t, IsFieldVisible(fields, "doctorAssigned"))
}

func TestIsSectionVisible(t *testing.T) {
	t.Run("core never collapses", func(t *testing.T) {
		fields := map[string]bool{
			"salutation":       false,
			"dob_age_gender":   false,
			"registrationType": false,
		}
		assert.True(t, IsSectionVisible(fields, constvars.FieldGroupCore))
	})

	t.Run("address collapses only when every member is hidden", func(t *testing.T) {
		fields := map[string]bool{
			"addressLine1":     false,
			"area":             false,
			"district_pinCode": false,
		}
		assert.True(t, IsSectionVisible(fields, constvars.FieldGroupAddress))

		fields["state"] = false
		assert.False(t, IsSectionVisible(fields, constvars.FieldGroupAddress))
	})

	t.Run("additional counts the custom fields toggle as a member", func(t *testing.T) {
		fields := map[string]bool{
			"alternateMobile":   false,
			"email":             false,
			"abhaId":            false,
			"bloodGroup":        false,
			"occupation":        false,
			"maritalStatus":     false,
			"preferredLanguage": false,
		}
		assert.True(t, IsSectionVisible(fields, constvars.FieldGroupAdditional))

		fields[constvars.CustomFieldsSectionKey] = false
		assert.False(t, IsSectionVisible(fields, constvars.FieldGroupAdditional))
	})
}

func TestSectionVisibility(t *testing.T) {
	sections := SectionVisibility(map[string]bool{})
	assert.True(t, sections[constvars.FieldGroupCore])
	assert.True(t, sections[constvars.FieldGroupAddress])
	assert.True(t, sections[constvars.FieldGroupAdditional])
}
