package usecase

import (
	"context"
	"errors"

	"mindcare-client/internal/journal/domain"
)

// Validation and sequencing failures the delivery layer maps to responses.
var (
	ErrEmptyContent         = errors.New("journal text is required")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrActionInFlight       = errors.New("a previous action is still in flight")
)

// JournalUsecase orchestrates the journal views: listing, the two-phase
// save flow and deletion. It keeps the last successfully fetched entries so
// a transient failure never blanks an already-rendered list.
type JournalUsecase interface {
	// Entries fetches the journal. On failure the previously cached
	// entries are returned alongside the error.
	Entries(ctx context.Context) ([]domain.JournalEntry, error)

	// SaveEntry analyzes the text, creates the entry with the returned
	// label and reloads the list. When the analysis recommends support,
	// a delayed navigation to /support is scheduled so the user sees
	// the save confirmation first.
	SaveEntry(ctx context.Context, content string) (*domain.SupportDecision, error)

	// DeleteEntry removes one entry. The destructive call never fires
	// without confirmed set.
	DeleteEntry(ctx context.Context, id int64, confirmed bool) error

	// MoodHistory groups the journal by day with mood composition.
	MoodHistory(ctx context.Context) ([]MoodDay, error)
}
