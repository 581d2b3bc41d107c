package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mindcare-client/internal/appointment/domain"
	"mindcare-client/internal/shell"
	"mindcare-client/pkg/datasource"
)

// appointmentUsecase implements AppointmentUsecase
type appointmentUsecase struct {
	source   datasource.Source
	notifier *shell.Notifier

	mu     sync.Mutex
	cached []domain.Appointment

	booking    atomic.Bool
	cancelling atomic.Bool
}

// NewAppointmentUsecase creates a new instance of appointmentUsecase
func NewAppointmentUsecase(source datasource.Source, notifier *shell.Notifier) AppointmentUsecase {
	return &appointmentUsecase{
		source:   source,
		notifier: notifier,
	}
}

func (u *appointmentUsecase) Appointments(ctx context.Context) ([]domain.Appointment, error) {
	appointments, err := u.source.ListAppointments(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		return append([]domain.Appointment(nil), u.cached...), err
	}
	u.cached = appointments
	return append([]domain.Appointment(nil), appointments...), nil
}

func (u *appointmentUsecase) Partition(appointments []domain.Appointment, now time.Time) (upcoming, past []domain.Appointment) {
	for _, appointment := range appointments {
		if appointment.Upcoming(now) {
			upcoming = append(upcoming, appointment)
		} else {
			past = append(past, appointment)
		}
	}
	return upcoming, past
}

func (u *appointmentUsecase) Book(ctx context.Context, req BookingRequest) (*domain.Appointment, error) {
	if strings.TrimSpace(req.DoctorName) == "" {
		return nil, ErrMissingDoctor
	}
	if strings.TrimSpace(req.AppointmentDate) == "" {
		return nil, ErrMissingDate
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return nil, ErrMissingTimeSlot
	}
	if !u.booking.CompareAndSwap(false, true) {
		return nil, ErrActionInFlight
	}
	defer u.booking.Store(false)

	appointment, err := u.source.BookAppointment(ctx, datasource.BookingRequest{
		DoctorName:      req.DoctorName,
		Specialization:  req.Specialization,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
		Note:            req.Note,
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.Appointments(ctx); err != nil {
		u.notifier.Error("Failed to load appointments")
	}
	return appointment, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !u.cancelling.CompareAndSwap(false, true) {
		return ErrActionInFlight
	}
	defer u.cancelling.Store(false)

	if err := u.source.CancelAppointment(ctx, id); err != nil {
		return err
	}

	if _, err := u.Appointments(ctx); err != nil {
		u.notifier.Error("Failed to load appointments")
	}
	return nil
}

func (u *appointmentUsecase) Doctors() []domain.Doctor {
	return domain.Directory()
}
