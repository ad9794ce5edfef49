package fieldconfig

import "intake-service/internal/pkg/constvars"

// RegistrationField is one configurable input on the registration form.
// doctorAssigned is deliberately not listed: the consulting doctor is always
// required and can never be hidden.
type RegistrationField struct {
	Key   string
	Label string
	Group string
}

var RegistrationFieldRegistry = []RegistrationField{
	{Key: "salutation", Label: "Salutation", Group: constvars.FieldGroupCore},
	{Key: "dob_age_gender", Label: "DOB / Age / Gender", Group: constvars.FieldGroupCore},
	{Key: "registrationType", Label: "Registration Type", Group: constvars.FieldGroupCore},
	{Key: "addressLine1", Label: "Address Line 1", Group: constvars.FieldGroupAddress},
	{Key: "area", Label: "Area", Group: constvars.FieldGroupAddress},
	{Key: "district_pinCode", Label: "District / PIN Code", Group: constvars.FieldGroupAddress},
	{Key: "state", Label: "State", Group: constvars.FieldGroupAddress},
	{Key: "alternateMobile", Label: "Alternate Mobile", Group: constvars.FieldGroupAdditional},
	{Key: "email", Label: "Email", Group: constvars.FieldGroupAdditional},
	{Key: "abhaId", Label: "ABHA ID", Group: constvars.FieldGroupAdditional},
	{Key: "bloodGroup", Label: "Blood Group", Group: constvars.FieldGroupAdditional},
	{Key: "occupation", Label: "Occupation", Group: constvars.FieldGroupAdditional},
	{Key: "maritalStatus", Label: "Marital Status", Group: constvars.FieldGroupAdditional},
	{Key: "preferredLanguage", Label: "Preferred Language", Group: constvars.FieldGroupAdditional},
	{Key: constvars.CustomFieldsSectionKey, Label: "Custom Fields", Group: constvars.FieldGroupAdditional},
}

// IsFieldVisible hides a field only on an explicit false; unknown and absent
// keys stay visible.
func IsFieldVisible(fields map[string]bool, key string) bool {
	visible, ok := fields[key]
	return !ok || visible
}

// IsSectionVisible reports whether a form section has anything left to show.
// Core never collapses; every other section shows while at least one of its
// member keys is not explicitly hidden.
func IsSectionVisible(fields map[string]bool, group string) bool {
	if group == constvars.FieldGroupCore {
		return true
	}
	for _, field := range RegistrationFieldRegistry {
		if field.Group == group && IsFieldVisible(fields, field.Key) {
			return true
		}
	}
	return false
}

func SectionVisibility(fields map[string]bool) map[string]bool {
	return map[string]bool{
		constvars.FieldGroupCore:       true,
		constvars.FieldGroupAddress:    IsSectionVisible(fields, constvars.FieldGroupAddress),
		constvars.FieldGroupAdditional: IsSectionVisible(fields, constvars.FieldGroupAdditional),
	}
}
