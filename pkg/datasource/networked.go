package datasource

import (
	"context"
	"fmt"

	apptdomain "mindcare-client/internal/appointment/domain"
	journaldomain "mindcare-client/internal/journal/domain"
	"mindcare-client/pkg/backend"
)

// NetworkedSource serves data operations from the real backend services.
// Mutations are followed by a full list reload at the controller level
// instead of a local patch, so server-computed fields (the sentiment label
// in particular) are never guessed client-side.
type NetworkedSource struct {
	journal      *backend.JournalClient
	appointments *backend.AppointmentClient
	sentiment    *backend.SentimentClient
	token        TokenProvider
}

func NewNetworkedSource(journal *backend.JournalClient, appointments *backend.AppointmentClient, sentiment *backend.SentimentClient, token TokenProvider) *NetworkedSource {
	return &NetworkedSource{
		journal:      journal,
		appointments: appointments,
		sentiment:    sentiment,
		token:        token,
	}
}

func (s *NetworkedSource) ListJournalEntries(ctx context.Context) ([]journaldomain.JournalEntry, error) {
	return s.journal.ListEntries(ctx, s.token())
}

// SaveJournalEntry is two-phase and order-dependent: analyze first, then
// create with the returned label and score. If analysis fails the entry is
// never created with a guessed label; the whole save fails.
func (s *NetworkedSource) SaveJournalEntry(ctx context.Context, content string) (*journaldomain.SupportDecision, error) {
	decision, err := s.sentiment.AnalyzeText(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("analyze text: %w", err)
	}

	_, err = s.journal.CreateEntry(ctx, s.token(), backend.CreateEntryRequest{
		Content:       content,
		Label:         decision.Label,
		SuicidalScore: decision.SuicidalScore,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return decision, nil
}

func (s *NetworkedSource) DeleteJournalEntry(ctx context.Context, id int64) error {
	return s.journal.DeleteEntry(ctx, s.token(), id)
}

func (s *NetworkedSource) ListAppointments(ctx context.Context) ([]apptdomain.Appointment, error) {
	return s.appointments.ListAppointments(ctx, s.token())
}

func (s *NetworkedSource) BookAppointment(ctx context.Context, req BookingRequest) (*apptdomain.Appointment, error) {
	return s.appointments.CreateAppointment(ctx, s.token(), backend.CreateAppointmentRequest{
		DoctorName:      req.DoctorName,
		Specialization:  req.Specialization,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
		Note:            req.Note,
	})
}

func (s *NetworkedSource) CancelAppointment(ctx context.Context, id int64) error {
	return s.appointments.DeleteAppointment(ctx, s.token(), id)
}
