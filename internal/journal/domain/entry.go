package domain

import (
	"fmt"
	"strings"
	"time"
)

// SentimentLabel classifies a journal entry. Labels are produced by the
// sentiment service; the client never guesses one.
type SentimentLabel string

const (
	LabelPositive   SentimentLabel = "POSITIVE"
	LabelNeutral    SentimentLabel = "NEUTRAL"
	LabelAnxiety    SentimentLabel = "ANXIETY"
	LabelDepression SentimentLabel = "DEPRESSION"
	LabelSuicidal   SentimentLabel = "SUICIDAL"
	LabelEuphoric   SentimentLabel = "EUPHORIC"
)

// KnownLabels is the fixed label set, in the order mood bars render it.
var KnownLabels = []SentimentLabel{
	LabelPositive,
	LabelAnxiety,
	LabelDepression,
	LabelSuicidal,
	LabelEuphoric,
	LabelNeutral,
}

// Normalize maps an arbitrary label string onto the fixed set. Unrecognized
// or absent labels count as NEUTRAL.
func Normalize(label string) SentimentLabel {
	candidate := SentimentLabel(strings.ToUpper(strings.TrimSpace(label)))
	for _, known := range KnownLabels {
		if candidate == known {
			return known
		}
	}
	return LabelNeutral
}

// Timestamp accepts the timestamp shapes the journal service emits:
// RFC 3339 or a zone-less LocalDateTime. Zone-less values are taken as
// local time, matching how the entries are displayed.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// JournalEntry is owned by the journal service; the client holds a
// read-through copy per page load, refreshed after every mutation.
type JournalEntry struct {
	ID            int64          `json:"id"`
	Content       string         `json:"content"`
	Label         SentimentLabel `json:"label"`
	CreatedAt     Timestamp      `json:"createdAt"`
	SuicidalScore *float64       `json:"suicidalScore,omitempty"`
}

// SupportDecision is the sentiment service's verdict for one piece of text.
// It is derived per analysis call, consumed once, never persisted.
type SupportDecision struct {
	Label              string  `json:"label"`
	SuicidalScore      float64 `json:"suicidal_score"`
	SupportRecommended bool    `json:"support_recommended"`
	Message            string  `json:"message,omitempty"`
	ConfidenceLevel    string  `json:"confidence_level,omitempty"`
}
