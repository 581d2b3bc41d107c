package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mindcare-client/internal/journal/domain"
	"mindcare-client/internal/shell"
	"mindcare-client/pkg/datasource"
)

// supportRedirectDelay gives the save confirmation time to show before the
// shell moves to the support flow.
const supportRedirectDelay = 1500 * time.Millisecond

// journalUsecase implements JournalUsecase
type journalUsecase struct {
	source    datasource.Source
	notifier  *shell.Notifier
	navigator *shell.Navigator

	mu     sync.Mutex
	cached []domain.JournalEntry

	// per-action in-flight flags; a second save or delete is rejected
	// until the first resolves
	saving   atomic.Bool
	deleting atomic.Bool
}

// NewJournalUsecase creates a new instance of journalUsecase
func NewJournalUsecase(source datasource.Source, notifier *shell.Notifier, navigator *shell.Navigator) JournalUsecase {
	return &journalUsecase{
		source:    source,
		notifier:  notifier,
		navigator: navigator,
	}
}

func (u *journalUsecase) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := u.source.ListJournalEntries(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		return append([]domain.JournalEntry(nil), u.cached...), err
	}
	u.cached = entries
	return append([]domain.JournalEntry(nil), entries...), nil
}

func (u *journalUsecase) SaveEntry(ctx context.Context, content string) (*domain.SupportDecision, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if !u.saving.CompareAndSwap(false, true) {
		return nil, ErrActionInFlight
	}
	defer u.saving.Store(false)

	decision, err := u.source.SaveJournalEntry(ctx, content)
	if err != nil {
		return nil, err
	}

	if _, err := u.Entries(ctx); err != nil {
		u.notifier.Error("Failed to load journal")
	}

	if decision.SupportRecommended {
		u.notifier.Info("We recommend some support resources")
		u.navigator.ScheduleAfter(supportRedirectDelay, "/support")
	}
	return decision, nil
}

func (u *journalUsecase) DeleteEntry(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !u.deleting.CompareAndSwap(false, true) {
		return ErrActionInFlight
	}
	defer u.deleting.Store(false)

	if err := u.source.DeleteJournalEntry(ctx, id); err != nil {
		return err
	}

	if _, err := u.Entries(ctx); err != nil {
		u.notifier.Error("Failed to load journal")
	}
	return nil
}

func (u *journalUsecase) MoodHistory(ctx context.Context) ([]MoodDay, error) {
	entries, err := u.Entries(ctx)
	return GroupByDay(entries), err
}
