package api

import (
	"github.com/gin-gonic/gin"

	apptDelivery "mindcare-client/internal/appointment/delivery"
	apptUsecasePkg "mindcare-client/internal/appointment/usecase"
	authDelivery "mindcare-client/internal/auth/delivery"
	authUsecasePkg "mindcare-client/internal/auth/usecase"
	journalDelivery "mindcare-client/internal/journal/delivery"
	journalUsecasePkg "mindcare-client/internal/journal/usecase"
	"mindcare-client/internal/shell"
	supportDelivery "mindcare-client/internal/support/delivery"
)

// Handler assembles the delivery layer around the usecases and runs the
// shell.
type Handler struct {
	authUsecase        authUsecasePkg.AuthUsecase
	authHandler        *authDelivery.AuthHandler
	journalHandler     *journalDelivery.JournalHandler
	appointmentHandler *apptDelivery.AppointmentHandler
	supportHandler     *supportDelivery.SupportHandler
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, journalUc journalUsecasePkg.JournalUsecase, appointmentUc apptUsecasePkg.AppointmentUsecase, renderer *shell.Renderer) *Handler {
	return &Handler{
		authUsecase:        authUc,
		authHandler:        authDelivery.NewAuthHandler(authUc, renderer),
		journalHandler:     journalDelivery.NewJournalHandler(journalUc, authUc, renderer),
		appointmentHandler: apptDelivery.NewAppointmentHandler(appointmentUc, authUc, renderer),
		supportHandler:     supportDelivery.NewSupportHandler(authUc, renderer),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	SetupRoutes(r, h.authUsecase, h.authHandler, h.journalHandler, h.appointmentHandler, h.supportHandler)

	return r.Run(addr)
}
