package domain

import "time"

// Appointment is owned by the appointments service. The upcoming/past split
// is computed at render time by comparing AppointmentDate to "now"; no flag
// is persisted.
type Appointment struct {
	ID             int64  `json:"id"`
	DoctorName     string `json:"doctorName"`
	Specialization string `json:"specialization"`
	AppointmentDate string `json:"appointmentDate"`
	TimeSlot       string `json:"timeSlot"`
	Note           string `json:"note,omitempty"`
}

var appointmentDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// StartsAt parses the appointment date. The booking form submits a plain
// calendar date; the service may echo it back with a time component.
func (a Appointment) StartsAt() (time.Time, bool) {
	for _, layout := range appointmentDateLayouts {
		if parsed, err := time.ParseInLocation(layout, a.AppointmentDate, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Upcoming reports whether the appointment is at or after the given instant.
// The boundary is inclusive: an appointment exactly at "now" is upcoming.
// Unparsable dates are treated as past so they never pollute the upcoming
// list.
func (a Appointment) Upcoming(now time.Time) bool {
	startsAt, ok := a.StartsAt()
	if !ok {
		return false
	}
	return !startsAt.Before(now)
}
