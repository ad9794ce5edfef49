package summary

import (
	"testing"

	"intake-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func TestFormatSummary(t *testing.T) {
	t.Run("classifies each line kind", func(t *testing.T) {
		raw := "**CLINICAL SUMMARY**\n" +
			"\n" +
			"## Key Findings\n" +
			"- Patient has 2 presenting complaints.\n" +
			"* Bullet with star marker\n" +
			"Chronic: Diabetes (3 years)\n" +
			"Requires medical review.\n"

		blocks := FormatSummary(raw)
		assert.Equal(t, []responses.SummaryBlock{
			{Type: responses.SummaryBlockHeading, Text: "CLINICAL SUMMARY"},
			{Type: responses.SummaryBlockHeading, Text: "Key Findings"},
			{Type: responses.SummaryBlockBullet, Text: "Patient has 2 presenting complaints."},
			{Type: responses.SummaryBlockBullet, Text: "Bullet with star marker"},
			{Type: responses.SummaryBlockPair, Key: "Chronic", Value: "Diabetes (3 years)"},
			{Type: responses.SummaryBlockParagraph, Text: "Requires medical review."},
		}, blocks)
	})

	t.Run("pair splits on the first colon only", func(t *testing.T) {
		blocks := FormatSummary("Time: 10:30 AM")
		assert.Equal(t, []responses.SummaryBlock{
			{Type: responses.SummaryBlockPair, Key: "Time", Value: "10:30 AM"},
		}, blocks)
	})

	t.Run("surrounding whitespace is trimmed before classification", func(t *testing.T) {
		blocks := FormatSummary("   - indented bullet  \n\t\n  plain  ")
		assert.Equal(t, []responses.SummaryBlock{
			{Type: responses.SummaryBlockBullet, Text: "indented bullet"},
			{Type: responses.SummaryBlockParagraph, Text: "plain"},
		}, blocks)
	})

	t.Run("empty input yields no blocks", func(t *testing.T) {
		assert.Empty(t, FormatSummary(""))
	})
}
