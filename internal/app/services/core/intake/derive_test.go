package intake

import (
	"testing"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveComplaint(t *testing.T) {
	t.Run("red flag needs both a flagged master and severe severity", func(t *testing.T) {
		c := DeriveComplaint(models.Complaint{Complaint: "Chest Pain", Severity: constvars.ComplaintSeveritySevere})
		assert.Equal(t, "Cardiology", c.Specialty)
		assert.True(t, c.RedFlagTriggered)

		c = DeriveComplaint(models.Complaint{Complaint: "Chest Pain", Severity: constvars.ComplaintSeverityMild})
		assert.Equal(t, "Cardiology", c.Specialty)
		assert.False(t, c.RedFlagTriggered)
	})

	t.Run("severe alone is not a red flag", func(t *testing.T) {
		c := DeriveComplaint(models.Complaint{Complaint: "Back Pain", Severity: constvars.ComplaintSeveritySevere})
		assert.Equal(t, "Orthopedics", c.Specialty)
		assert.False(t, c.RedFlagTriggered)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		c := DeriveComplaint(models.Complaint{Complaint: "chest pain", Severity: constvars.ComplaintSeveritySevere})
		assert.True(t, c.RedFlagTriggered)
	})

	t.Run("off-list complaints carry no specialty or flag", func(t *testing.T) {
		c := DeriveComplaint(models.Complaint{
			Complaint:        "Itchy Elbow",
			Severity:         constvars.ComplaintSeveritySevere,
			Specialty:        "stale",
			RedFlagTriggered: true,
		})
		assert.Equal(t, "", c.Specialty)
		assert.False(t, c.RedFlagTriggered)
	})
}

func TestUncontrolledWarnings(t *testing.T) {
	conditions := []models.ChronicCondition{
		{Name: "Diabetes Mellitus"},
		{Name: "Hypertension", Medications: []models.Medication{{Name: "Amlodipine"}}},
		{Name: "Asthma"},
	}

	warnings := UncontrolledWarnings(conditions)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Diabetes Mellitus")
}

func TestDrugConflicts(t *testing.T) {
	medications := []models.Medication{
		{Name: "Penicillin-V 500mg"},
		{Name: "Paracetamol"},
	}

	t.Run("substring match against the substance", func(t *testing.T) {
		allergies := models.Allergies{
			HasAllergies: true,
			Types:        []string{constvars.AllergyTypeDrug},
			Substance:    "Penicillin",
		}
		conflicts := DrugConflicts(allergies, medications)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, "Penicillin-V 500mg", conflicts[0].Name)
	})

	t.Run("no conflicts without a drug-type allergy", func(t *testing.T) {
		allergies := models.Allergies{
			HasAllergies: true,
			Types:        []string{constvars.AllergyTypeFood},
			Substance:    "Penicillin",
		}
		assert.Empty(t, DrugConflicts(allergies, medications))
	})

	t.Run("no conflicts without a substance", func(t *testing.T) {
		allergies := models.Allergies{
			HasAllergies: true,
			Types:        []string{constvars.AllergyTypeDrug},
		}
		assert.Empty(t, DrugConflicts(allergies, medications))
	})

	t.Run("no conflicts when allergies are denied", func(t *testing.T) {
		allergies := models.Allergies{
			Types:     []string{constvars.AllergyTypeDrug},
			Substance: "Penicillin",
		}
		assert.Empty(t, DrugConflicts(allergies, medications))
	})
}

func TestCombinedMedications(t *testing.T) {
	conditions := []models.ChronicCondition{
		{Name: "Diabetes Mellitus", Medications: []models.Medication{{Name: "Metformin"}}},
	}
	history := models.PastHistory{
		CurrentMedications: []models.Medication{{Name: "Aspirin"}},
	}

	combined := CombinedMedications(conditions, history)
	assert.Len(t, combined, 2)
}

func TestParseHistoryEntry(t *testing.T) {
	tests := []struct {
		input        string
		expectedName string
		expectedYear string
	}{
		{"Appendectomy 2019", "Appendectomy", "2019"},
		{"Knee replacement surgery 2021", "Knee replacement surgery", "2021"},
		{"Appendectomy", "Appendectomy", "Unknown"},
		{"   ", "", ""},
		{"2019", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			name, year := ParseHistoryEntry(tc.input)
			assert.Equal(t, tc.expectedName, name)
			assert.Equal(t, tc.expectedYear, year)
		})
	}
}

func TestDerivePastHistory(t *testing.T) {
	t.Run("free text becomes structured entries", func(t *testing.T) {
		history := DerivePastHistory(models.PastHistory{}, "Appendectomy 2019", "Dengue admission 2022")

		require.Len(t, history.Surgeries, 1)
		assert.Equal(t, "Appendectomy", history.Surgeries[0].Name)
		assert.Equal(t, "2019", history.Surgeries[0].Year)
		require.Len(t, history.Hospitalizations, 1)
		assert.Equal(t, "Dengue admission", history.Hospitalizations[0].Reason)
		assert.Equal(t, "2022", history.Hospitalizations[0].Year)
	})

	t.Run("text without a year carries Unknown", func(t *testing.T) {
		history := DerivePastHistory(models.PastHistory{}, "Appendectomy", "")
		require.Len(t, history.Surgeries, 1)
		assert.Equal(t, "Unknown", history.Surgeries[0].Year)
		assert.Empty(t, history.Hospitalizations)
	})

	t.Run("blank text leaves existing entries untouched", func(t *testing.T) {
		existing := models.PastHistory{
			Surgeries: []models.SurgeryEntry{{Name: "Tonsillectomy", Year: "2005"}},
		}
		history := DerivePastHistory(existing, "  ", "")
		require.Len(t, history.Surgeries, 1)
		assert.Equal(t, "Tonsillectomy", history.Surgeries[0].Name)
	})
}

func TestNormalizeIllnesses(t *testing.T) {
	illnesses := []string{" Malaria ", "Typhoid", "Malaria", "", "Dengue", "Measles", "Mumps", "Rubella"}
	normalized := NormalizeIllnesses(illnesses)
	assert.Equal(t, []string{"Malaria", "Typhoid", "Dengue", "Measles", "Mumps"}, normalized)
}
