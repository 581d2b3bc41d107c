package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apptDelivery "mindcare-client/internal/appointment/delivery"
	authDelivery "mindcare-client/internal/auth/delivery"
	authUsecase "mindcare-client/internal/auth/usecase"
	journalDelivery "mindcare-client/internal/journal/delivery"
	supportDelivery "mindcare-client/internal/support/delivery"
)

// SetupRoutes wires the client shell's navigable paths. Guarded routes run
// the session check on every request; the support flow and the auth views
// stay public.
func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, journalHandler *journalDelivery.JournalHandler, appointmentHandler *apptDelivery.AppointmentHandler, supportHandler *supportDelivery.SupportHandler) {
	// Auth views (public)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.POST("/logout", authHandler.Logout)

	// Protected views
	protected := r.Group("/")
	protected.Use(authDelivery.RequireSession(authUc))
	{
		protected.GET("/dashboard", authHandler.Dashboard)

		protected.GET("/journal", journalHandler.GetJournal)
		protected.POST("/journal", journalHandler.SaveEntry)
		protected.DELETE("/journal/:id", journalHandler.DeleteEntry)
		protected.GET("/mood-history", journalHandler.MoodHistory)

		protected.GET("/doctors", appointmentHandler.Doctors)
		protected.GET("/book-appointment", appointmentHandler.ShowBooking)
		protected.POST("/book-appointment", appointmentHandler.Book)
		protected.GET("/my-appointments", appointmentHandler.MyAppointments)
		protected.DELETE("/my-appointments/:id", appointmentHandler.Cancel)
	}

	// Support flow (public, never guarded)
	support := r.Group("/support")
	{
		support.GET("", supportHandler.Choices)
		support.GET("/music", supportHandler.Music)
		support.GET("/videos", supportHandler.Videos)
		support.GET("/doctors", supportHandler.Doctors)
	}

	// Catch-all: authenticated users land on the dashboard, everyone
	// else on the login view.
	r.NoRoute(func(c *gin.Context) {
		if _, err := authUc.ValidSession(); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})
}
