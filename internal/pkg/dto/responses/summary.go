package responses

const (
	SummaryBlockHeading   = "heading"
	SummaryBlockBullet    = "bullet"
	SummaryBlockPair      = "pair"
	SummaryBlockParagraph = "paragraph"
)

type SummaryBlock struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

type Summary struct {
	Raw    string         `json:"raw"`
	Blocks []SummaryBlock `json:"blocks"`
}
