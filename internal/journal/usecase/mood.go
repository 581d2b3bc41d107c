package usecase

import (
	"math"

	"mindcare-client/internal/journal/domain"
)

// MoodShare is one label's slice of a day's mood bar.
type MoodShare struct {
	Label   domain.SentimentLabel `json:"label"`
	Count   int                   `json:"count"`
	Percent int                   `json:"percent"`
}

// MoodDay is one calendar day's entries with their percentage composition.
type MoodDay struct {
	Day         string                `json:"day"`
	Entries     []domain.JournalEntry `json:"entries"`
	Composition []MoodShare           `json:"composition"`
}

// GroupByDay partitions entries by the local-time weekday name of their
// creation timestamp. Days appear in first-seen order and entries keep
// their fetch order within a day, so grouping the same list twice yields
// identical buckets. Unrecognized or absent labels count as NEUTRAL.
func GroupByDay(entries []domain.JournalEntry) []MoodDay {
	var days []MoodDay
	index := map[string]int{}

	for _, entry := range entries {
		day := entry.CreatedAt.Weekday().String()
		i, seen := index[day]
		if !seen {
			i = len(days)
			index[day] = i
			days = append(days, MoodDay{Day: day})
		}
		days[i].Entries = append(days[i].Entries, entry)
	}

	for i := range days {
		days[i].Composition = composition(days[i].Entries)
	}
	return days
}

// composition computes the per-label percentage split over the fixed label
// set. Percentages are rounded to whole numbers, so they sum to 100 within
// rounding when at least one entry exists.
func composition(entries []domain.JournalEntry) []MoodShare {
	counts := map[domain.SentimentLabel]int{}
	for _, entry := range entries {
		counts[domain.Normalize(string(entry.Label))]++
	}

	total := len(entries)
	if total == 0 {
		return nil
	}

	var shares []MoodShare
	for _, label := range domain.KnownLabels {
		count := counts[label]
		if count == 0 {
			continue
		}
		shares = append(shares, MoodShare{
			Label:   label,
			Count:   count,
			Percent: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	return shares
}
