package datasource

import (
	"context"
	"errors"
	"sync"
	"time"

	apptdomain "mindcare-client/internal/appointment/domain"
	journaldomain "mindcare-client/internal/journal/domain"
)

// ErrNotFound is returned for mutations against ids the fixtures don't
// hold.
var ErrNotFound = errors.New("not found")

// MemorySource serves demo mode: every operation works against in-memory
// fixtures and mutations apply locally, so the app stays usable with no
// backend reachable. Saved entries get a fixed POSITIVE label and support
// is never recommended.
type MemorySource struct {
	mu           sync.Mutex
	entries      []journaldomain.JournalEntry
	appointments []apptdomain.Appointment
	nextID       int64
}

func NewMemorySource() *MemorySource {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	return &MemorySource{
		entries: []journaldomain.JournalEntry{
			{
				ID:        1,
				Content:   "Today I felt calm and focused while working on my project.",
				Label:     journaldomain.LabelPositive,
				CreatedAt: journaldomain.Timestamp{Time: now},
			},
			{
				ID:        2,
				Content:   "I felt a little anxious about deadlines, but managed it.",
				Label:     journaldomain.LabelAnxiety,
				CreatedAt: journaldomain.Timestamp{Time: yesterday},
			},
			{
				ID:        3,
				Content:   "Low mood in the evening.",
				Label:     journaldomain.LabelDepression,
				CreatedAt: journaldomain.Timestamp{Time: yesterday},
			},
		},
		appointments: []apptdomain.Appointment{
			{
				ID:              1,
				DoctorName:      "Dr. Ananya Sharma",
				Specialization:  "Psychiatrist",
				AppointmentDate: tomorrow.Format(time.RFC3339),
				TimeSlot:        "10:30 AM",
				Note:            "Initial consultation",
			},
			{
				ID:              2,
				DoctorName:      "Dr. Rahul Mehta",
				Specialization:  "Clinical Psychologist",
				AppointmentDate: twoDaysAgo.Format(time.RFC3339),
				TimeSlot:        "04:00 PM",
			},
		},
		nextID: 4,
	}
}

func (s *MemorySource) allocateID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemorySource) ListJournalEntries(ctx context.Context) ([]journaldomain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]journaldomain.JournalEntry(nil), s.entries...), nil
}

func (s *MemorySource) SaveJournalEntry(ctx context.Context, content string) (*journaldomain.SupportDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := journaldomain.JournalEntry{
		ID:        s.allocateID(),
		Content:   content,
		Label:     journaldomain.LabelPositive,
		CreatedAt: journaldomain.Timestamp{Time: time.Now()},
	}
	// newest first, matching how the journal view lists entries
	s.entries = append([]journaldomain.JournalEntry{entry}, s.entries...)

	return &journaldomain.SupportDecision{
		Label:              string(journaldomain.LabelPositive),
		SupportRecommended: false,
	}, nil
}

func (s *MemorySource) DeleteJournalEntry(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemorySource) ListAppointments(ctx context.Context) ([]apptdomain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]apptdomain.Appointment(nil), s.appointments...), nil
}

func (s *MemorySource) BookAppointment(ctx context.Context, req BookingRequest) (*apptdomain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment := apptdomain.Appointment{
		ID:              s.allocateID(),
		DoctorName:      req.DoctorName,
		Specialization:  req.Specialization,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
		Note:            req.Note,
	}
	s.appointments = append(s.appointments, appointment)
	return &appointment, nil
}

func (s *MemorySource) CancelAppointment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, appointment := range s.appointments {
		if appointment.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
