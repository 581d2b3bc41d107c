package usecase

import (
	"context"
	"errors"
	"time"

	"mindcare-client/internal/appointment/domain"
)

var (
	ErrMissingDate          = errors.New("appointment date is required")
	ErrMissingTimeSlot      = errors.New("time slot is required")
	ErrMissingDoctor        = errors.New("no doctor selected")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrActionInFlight       = errors.New("a previous action is still in flight")
)

// BookingRequest is what the booking form submits.
type BookingRequest struct {
	DoctorName      string `json:"doctorName"`
	Specialization  string `json:"specialization"`
	AppointmentDate string `json:"appointmentDate"`
	TimeSlot        string `json:"timeSlot"`
	Note            string `json:"note"`
}

// AppointmentUsecase orchestrates the doctors directory, booking and the
// appointments list. The upcoming/past split is recomputed at render time.
type AppointmentUsecase interface {
	// Appointments fetches the list. On failure the previously cached
	// appointments are returned alongside the error.
	Appointments(ctx context.Context) ([]domain.Appointment, error)

	// Partition splits appointments around now; the boundary itself is
	// upcoming.
	Partition(appointments []domain.Appointment, now time.Time) (upcoming, past []domain.Appointment)

	Book(ctx context.Context, req BookingRequest) (*domain.Appointment, error)

	// Cancel removes one appointment. The destructive call never fires
	// without confirmed set.
	Cancel(ctx context.Context, id int64, confirmed bool) error

	Doctors() []domain.Doctor
}
