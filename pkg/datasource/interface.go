package datasource

import (
	"context"

	apptdomain "mindcare-client/internal/appointment/domain"
	journaldomain "mindcare-client/internal/journal/domain"
)

// BookingRequest is the data-source-level booking payload.
type BookingRequest struct {
	DoctorName      string
	Specialization  string
	AppointmentDate string
	TimeSlot        string
	Note            string
}

// Source serves every journal and appointment data operation. Controllers
// receive one implementation at startup and never learn which one is
// active.
//
// Implementations: NetworkedSource (real services, reload-after-mutation)
// and MemorySource (in-memory fixtures for demo mode).
type Source interface {
	ListJournalEntries(ctx context.Context) ([]journaldomain.JournalEntry, error)

	// SaveJournalEntry runs the whole save flow for one piece of text
	// and returns the sentiment verdict that was applied to it.
	SaveJournalEntry(ctx context.Context, content string) (*journaldomain.SupportDecision, error)

	DeleteJournalEntry(ctx context.Context, id int64) error

	ListAppointments(ctx context.Context) ([]apptdomain.Appointment, error)
	BookAppointment(ctx context.Context, req BookingRequest) (*apptdomain.Appointment, error)
	CancelAppointment(ctx context.Context, id int64) error
}

// TokenProvider hands the current bearer token to the networked source.
// It is read per call so a fresh login is picked up without rewiring.
type TokenProvider func() string
