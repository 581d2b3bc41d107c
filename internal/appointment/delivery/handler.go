package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mindcare-client/internal/appointment/usecase"
	authdelivery "mindcare-client/internal/auth/delivery"
	authusecase "mindcare-client/internal/auth/usecase"
	"mindcare-client/internal/shell"
)

// AppointmentHandler serves the doctors directory, the booking form and the
// appointments list.
type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	authUsecase        authusecase.AuthUsecase
	renderer           *shell.Renderer
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, authUsecase authusecase.AuthUsecase, renderer *shell.Renderer) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		authUsecase:        authUsecase,
		renderer:           renderer,
	}
}

// Doctors renders the static directory.
// GET /doctors
func (h *AppointmentHandler) Doctors(c *gin.Context) {
	session := authdelivery.SessionFromContext(c, h.authUsecase)
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":    "doctors",
		"doctors": h.appointmentUsecase.Doctors(),
	}))
}

// ShowBooking renders the booking form with the available slots.
// GET /book-appointment
func (h *AppointmentHandler) ShowBooking(c *gin.Context) {
	session := authdelivery.SessionFromContext(c, h.authUsecase)
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":      "book-appointment",
		"timeSlots": []string{"10:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
	}))
}

// Book creates an appointment and lands on the appointments list.
// POST /book-appointment
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req usecase.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.appointmentUsecase.Book(c.Request.Context(), req)
	switch {
	case errors.Is(err, usecase.ErrMissingDoctor),
		errors.Is(err, usecase.ErrMissingDate),
		errors.Is(err, usecase.ErrMissingTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, usecase.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.renderer.Notifier().Error("Booking failed")
		c.JSON(shell.HTTPStatus(err), gin.H{"error": "booking failed"})
		return
	}

	h.renderer.Notifier().Success("Appointment booked")
	c.Redirect(http.StatusFound, "/my-appointments")
}

// MyAppointments renders the list split into upcoming and past at render
// time.
// GET /my-appointments
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	session := authdelivery.SessionFromContext(c, h.authUsecase)

	appointments, err := h.appointmentUsecase.Appointments(c.Request.Context())
	if err != nil {
		h.renderer.Notifier().Error("Failed to load appointments")
	}
	upcoming, past := h.appointmentUsecase.Partition(appointments, time.Now())

	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":     "my-appointments",
		"upcoming": upcoming,
		"past":     past,
	}))
}

// Cancel removes one appointment after explicit confirmation. A failed
// cancel leaves the appointment in the list.
// DELETE /my-appointments/:id?confirm=true
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}
	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))

	err = h.appointmentUsecase.Cancel(c.Request.Context(), id, confirmed)
	switch {
	case errors.Is(err, usecase.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, usecase.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.renderer.Notifier().Error("Could not cancel appointment")
		c.JSON(shell.HTTPStatus(err), gin.H{"error": "could not cancel appointment"})
		return
	}

	h.renderer.Notifier().Success("Appointment cancelled")
	c.Status(http.StatusNoContent)
}
