package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptdomain "mindcare-client/internal/appointment/domain"
	"mindcare-client/internal/journal/domain"
	"mindcare-client/internal/shell"
	"mindcare-client/pkg/datasource"
)

// fakeSource scripts the data source for controller tests.
type fakeSource struct {
	entries  []domain.JournalEntry
	listErr  error
	decision *domain.SupportDecision
	saveErr  error
	delErr   error

	saveCalls   int
	deleteCalls int
	saveStarted chan struct{}
	saveRelease chan struct{}
}

func (f *fakeSource) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeSource) SaveJournalEntry(ctx context.Context, content string) (*domain.SupportDecision, error) {
	f.saveCalls++
	if f.saveStarted != nil {
		close(f.saveStarted)
		f.saveStarted = nil
	}
	if f.saveRelease != nil {
		<-f.saveRelease
	}
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return f.decision, nil
}

func (f *fakeSource) DeleteJournalEntry(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.delErr
}

func (f *fakeSource) ListAppointments(ctx context.Context) ([]apptdomain.Appointment, error) {
	return nil, nil
}

func (f *fakeSource) BookAppointment(ctx context.Context, req datasource.BookingRequest) (*apptdomain.Appointment, error) {
	return nil, nil
}

func (f *fakeSource) CancelAppointment(ctx context.Context, id int64) error { return nil }

func newTestUsecase(source datasource.Source) (JournalUsecase, *shell.Notifier, *shell.Navigator) {
	notifier := shell.NewNotifier()
	navigator := shell.NewNavigator()
	return NewJournalUsecase(source, notifier, navigator), notifier, navigator
}

func TestEntriesKeepsPriorStateOnFetchFailure(t *testing.T) {
	source := &fakeSource{entries: []domain.JournalEntry{{ID: 1, Content: "fine"}}}
	uc, _, _ := newTestUsecase(source)

	entries, err := uc.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	source.listErr = errors.New("boom")
	entries, err = uc.Entries(context.Background())
	assert.Error(t, err)
	// already-rendered data survives the transient failure
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ID)
}

func TestSaveEntryRejectsEmptyText(t *testing.T) {
	source := &fakeSource{}
	uc, _, _ := newTestUsecase(source)

	_, err := uc.SaveEntry(context.Background(), "   \n ")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Zero(t, source.saveCalls)
}

func TestSaveEntryPropagatesSourceFailure(t *testing.T) {
	source := &fakeSource{saveErr: errors.New("analyze text: request failed")}
	uc, _, navigator := newTestUsecase(source)

	_, err := uc.SaveEntry(context.Background(), "feeling off")
	assert.Error(t, err)
	assert.Empty(t, navigator.Consume())
}

func TestSaveEntrySchedulesSupportRedirect(t *testing.T) {
	source := &fakeSource{
		decision: &domain.SupportDecision{
			Label:              "SUICIDAL",
			SuicidalScore:      0.92,
			SupportRecommended: true,
		},
	}
	uc, notifier, navigator := newTestUsecase(source)

	decision, err := uc.SaveEntry(context.Background(), "dark thoughts")
	require.NoError(t, err)
	assert.True(t, decision.SupportRecommended)

	notices := notifier.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, shell.LevelInfo, notices[0].Level)

	// redirect fires only after the confirmation delay
	assert.Empty(t, navigator.Consume())
	assert.Eventually(t, func() bool {
		return navigator.Consume() == "/support"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestSaveEntryWithoutSupportDoesNotRedirect(t *testing.T) {
	source := &fakeSource{decision: &domain.SupportDecision{Label: "POSITIVE"}}
	uc, notifier, navigator := newTestUsecase(source)

	_, err := uc.SaveEntry(context.Background(), "a good day")
	require.NoError(t, err)
	assert.Empty(t, notifier.Drain())

	time.Sleep(2 * time.Second)
	assert.Empty(t, navigator.Consume())
}

func TestSaveEntryRejectsOverlappingSave(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := &fakeSource{
		decision:    &domain.SupportDecision{Label: "NEUTRAL"},
		saveStarted: started,
		saveRelease: release,
	}
	uc, _, _ := newTestUsecase(source)

	done := make(chan error, 1)
	go func() {
		_, err := uc.SaveEntry(context.Background(), "first")
		done <- err
	}()

	<-started
	_, err := uc.SaveEntry(context.Background(), "second")
	assert.ErrorIs(t, err, ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, source.saveCalls)
}

func TestDeleteEntryRequiresConfirmation(t *testing.T) {
	source := &fakeSource{}
	uc, _, _ := newTestUsecase(source)

	err := uc.DeleteEntry(context.Background(), 7, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Zero(t, source.deleteCalls)
}

func TestDeleteEntryFailureLeavesListIntact(t *testing.T) {
	source := &fakeSource{
		entries: []domain.JournalEntry{{ID: 7, Content: "keep me"}},
		delErr:  errors.New("backend returned 500: oops"),
	}
	uc, _, _ := newTestUsecase(source)

	_, err := uc.Entries(context.Background())
	require.NoError(t, err)

	err = uc.DeleteEntry(context.Background(), 7, true)
	assert.Error(t, err)

	entries, err := uc.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ID)
}

func TestMoodHistoryGroupsFetchedEntries(t *testing.T) {
	at := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.Local)
	source := &fakeSource{entries: []domain.JournalEntry{
		{ID: 1, Label: domain.LabelPositive, CreatedAt: domain.Timestamp{Time: at}},
	}}
	uc, _, _ := newTestUsecase(source)

	days, err := uc.MoodHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Monday", days[0].Day)
}
