package summary

import (
	"strings"

	"intake-service/internal/pkg/dto/responses"
)

// FormatSummary parses the raw summarizer text into display blocks, one line
// at a time. Blank lines are dropped. A line is classified in order as a
// heading ("**...**" or a "#" prefix), a bullet ("- " or "* "), a key/value
// pair (first colon splits it), or a plain paragraph.
func FormatSummary(raw string) []responses.SummaryBlock {
	blocks := []responses.SummaryBlock{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
			blocks = append(blocks, responses.SummaryBlock{
				Type: responses.SummaryBlockHeading,
				Text: strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**"),
			})
		case strings.HasPrefix(line, "#"):
			blocks = append(blocks, responses.SummaryBlock{
				Type: responses.SummaryBlockHeading,
				Text: strings.TrimSpace(strings.TrimLeft(line, "#")),
			})
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			blocks = append(blocks, responses.SummaryBlock{
				Type: responses.SummaryBlockBullet,
				Text: line[2:],
			})
		case strings.Contains(line, ":"):
			key, value, _ := strings.Cut(line, ":")
			blocks = append(blocks, responses.SummaryBlock{
				Type:  responses.SummaryBlockPair,
				Key:   strings.TrimSpace(key),
				Value: strings.TrimSpace(value),
			})
		default:
			blocks = append(blocks, responses.SummaryBlock{
				Type: responses.SummaryBlockParagraph,
				Text: line,
			})
		}
	}
	return blocks
}
