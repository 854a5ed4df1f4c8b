package corpus

import "strings"

// Engagement is the coarse popularity classification attached to a prompt.
type Engagement string

const (
	EngagementHigh   Engagement = "high"
	EngagementMedium Engagement = "medium"
	EngagementLow    Engagement = "low"
)

// ParseEngagement normalizes a raw engagement value. Unrecognized or empty
// values fall back to low rather than failing.
func ParseEngagement(raw string) Engagement {
	switch Engagement(strings.ToLower(strings.TrimSpace(raw))) {
	case EngagementHigh:
		return EngagementHigh
	case EngagementMedium:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// Item is a single prompt in the corpus. Items are immutable once loaded.
type Item struct {
	ID         string     `yaml:"id"`
	Content    string     `yaml:"content"`
	Categories []string   `yaml:"categories"`
	Engagement Engagement `yaml:"engagement"`
	Date       string     `yaml:"date,omitempty"`
	Source     string     `yaml:"source,omitempty"`
}

// Meta is the display metadata for a category key.
type Meta struct {
	Label string `yaml:"label"`
	Style string `yaml:"style"`
}

// FallbackCategory is the metadata key used for category keys that have no
// entry in the corpus metadata table.
const FallbackCategory = "general"
