package summarizer

import (
	"context"
	"fmt"
	"strings"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
)

type stubSummarizer struct{}

// NewStubSummarizer returns the built-in summarizer used when no external
// summary backend is configured. It produces a fixed-shape summary from the
// captured data so the rendering path works end to end.
func NewStubSummarizer() contracts.Summarizer {
	return &stubSummarizer{}
}

func (s *stubSummarizer) Summarize(ctx context.Context, intake *models.IntakeRecord, vitals *models.VitalsRecord) (string, error) {
	complaintCount := 0
	chronic := "None"
	allergies := "None"

	if intake != nil {
		complaintCount = len(intake.Intake.Complaints)

		var names []string
		for _, condition := range intake.Intake.ChronicConditions {
			if condition.Name != "" {
				names = append(names, condition.Name)
			}
		}
		if len(names) > 0 {
			chronic = strings.Join(names, ", ")
		}

		if intake.Intake.Allergies.HasAllergies && intake.Intake.Allergies.Substance != "" {
			allergies = intake.Intake.Allergies.Substance
		}
	}

	var b strings.Builder
	b.WriteString("**CLINICAL SUMMARY**\n")
	b.WriteString(fmt.Sprintf("- Patient has %d presenting complaints.\n", complaintCount))
	b.WriteString("\n")
	b.WriteString("**Key Findings**\n")
	b.WriteString(fmt.Sprintf("Chronic: %s\n", chronic))
	b.WriteString(fmt.Sprintf("Allergies: %s\n", allergies))
	b.WriteString("\n")
	b.WriteString("**Assessment Note**\n")
	b.WriteString("- This summary is generated from captured data and uploaded records. Requires medical review.")

	return b.String(), nil
}
