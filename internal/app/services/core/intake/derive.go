package intake

import (
	"fmt"
	"regexp"
	"strings"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// DeriveComplaint fills specialty and the red flag from the master list. A
// complaint off the master list carries neither.
func DeriveComplaint(c models.Complaint) models.Complaint {
	for _, master := range ComplaintMasters {
		if strings.EqualFold(master.Label, c.Complaint) {
			c.Specialty = master.Specialty
			c.RedFlagTriggered = master.RedFlag && c.Severity == constvars.ComplaintSeveritySevere
			return c
		}
	}
	c.Specialty = ""
	c.RedFlagTriggered = false
	return c
}

func DeriveComplaints(complaints []models.Complaint) []models.Complaint {
	derived := make([]models.Complaint, len(complaints))
	for i, c := range complaints {
		derived[i] = DeriveComplaint(c)
	}
	return derived
}

func RedFlagComplaints(complaints []models.Complaint) []models.Complaint {
	var flagged []models.Complaint
	for _, c := range complaints {
		if c.RedFlagTriggered {
			flagged = append(flagged, c)
		}
	}
	return flagged
}

// UncontrolledWarnings flags diabetes and hypertension entries that have no
// medications recorded. Advisory only, never blocks submission.
func UncontrolledWarnings(conditions []models.ChronicCondition) []string {
	var warnings []string
	for _, condition := range conditions {
		name := strings.ToLower(condition.Name)
		if (strings.Contains(name, "diabetes") || strings.Contains(name, "hypertension")) && len(condition.Medications) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s may be uncontrolled: no medications recorded", condition.Name))
		}
	}
	return warnings
}

// CombinedMedications merges chronic condition medications with the current
// medication list from past history.
func CombinedMedications(conditions []models.ChronicCondition, history models.PastHistory) []models.Medication {
	var combined []models.Medication
	for _, condition := range conditions {
		combined = append(combined, condition.Medications...)
	}
	combined = append(combined, history.CurrentMedications...)
	return combined
}

// DrugConflicts returns medications whose name contains the recorded allergy
// substance. Only a drug allergy with a substance can conflict.
func DrugConflicts(allergies models.Allergies, medications []models.Medication) []models.Medication {
	if !allergies.HasAllergies || allergies.Substance == "" {
		return nil
	}
	isDrugAllergy := false
	for _, t := range allergies.Types {
		if t == constvars.AllergyTypeDrug {
			isDrugAllergy = true
			break
		}
	}
	if !isDrugAllergy {
		return nil
	}

	substance := strings.ToLower(allergies.Substance)
	var conflicts []models.Medication
	for _, med := range medications {
		if strings.Contains(strings.ToLower(med.Name), substance) {
			conflicts = append(conflicts, med)
		}
	}
	return conflicts
}

// ParseHistoryEntry splits free text like "Appendectomy 2019" into a name and
// a year. Without a trailing 4-digit year the whole text is the name and the
// year is "Unknown".
func ParseHistoryEntry(text string) (name, year string) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return "", ""
	}

	last := fields[len(fields)-1]
	if yearPattern.MatchString(last) {
		name = strings.Join(fields[:len(fields)-1], " ")
		year = last
	} else {
		name = strings.Join(fields, " ")
		year = "Unknown"
	}
	if name == "" {
		return "", ""
	}
	return name, year
}

// DerivePastHistory parses the free-text surgery and hospitalization inputs
// into structured entries appended to the history. Blank text adds nothing.
func DerivePastHistory(history models.PastHistory, surgeriesText, hospitalizationsText string) models.PastHistory {
	if name, year := ParseHistoryEntry(surgeriesText); name != "" {
		history.Surgeries = append(history.Surgeries, models.SurgeryEntry{Name: name, Year: year})
	}
	if reason, year := ParseHistoryEntry(hospitalizationsText); reason != "" {
		history.Hospitalizations = append(history.Hospitalizations, models.HospitalizationEntry{Reason: reason, Year: year})
	}
	return history
}

// NormalizeIllnesses trims, drops blanks, deduplicates and caps the past
// illness list.
func NormalizeIllnesses(illnesses []string) []string {
	seen := make(map[string]struct{})
	normalized := []string{}
	for _, illness := range illnesses {
		trimmed := strings.TrimSpace(illness)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
		if len(normalized) == constvars.MaxPastIllnesses {
			break
		}
	}
	return normalized
}
