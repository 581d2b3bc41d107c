package backend

import (
	"context"
	"fmt"
	"net/http"

	apptdomain "mindcare-client/internal/appointment/domain"
)

// AppointmentClient talks to the appointments service. All operations are
// authenticated.
type AppointmentClient struct {
	rest *restClient
}

func NewAppointmentClient(baseURL string) *AppointmentClient {
	return &AppointmentClient{rest: newRESTClient(baseURL)}
}

type CreateAppointmentRequest struct {
	DoctorName      string `json:"doctorName"`
	Specialization  string `json:"specialization"`
	AppointmentDate string `json:"appointmentDate"`
	TimeSlot        string `json:"timeSlot"`
	Note            string `json:"note,omitempty"`
}

// ListAppointments returns all appointments. An empty response body
// normalizes to an empty list.
func (c *AppointmentClient) ListAppointments(ctx context.Context, token string) ([]apptdomain.Appointment, error) {
	appointments := []apptdomain.Appointment{}
	if err := c.rest.doJSON(ctx, http.MethodGet, "/appointments", token, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *AppointmentClient) CreateAppointment(ctx context.Context, token string, req CreateAppointmentRequest) (*apptdomain.Appointment, error) {
	var appointment apptdomain.Appointment
	if err := c.rest.doJSON(ctx, http.MethodPost, "/appointments", token, req, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (c *AppointmentClient) DeleteAppointment(ctx context.Context, token string, id int64) error {
	return c.rest.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), token, nil, nil)
}
