package main

import (
	"log"

	api "mindcare-client/cmd/api"
	apptUsecase "mindcare-client/internal/appointment/usecase"
	authRepo "mindcare-client/internal/auth/repository"
	authUsecase "mindcare-client/internal/auth/usecase"
	journalUsecase "mindcare-client/internal/journal/usecase"
	"mindcare-client/internal/shell"
	"mindcare-client/pkg/backend"
	"mindcare-client/pkg/config"
	"mindcare-client/pkg/database"
	"mindcare-client/pkg/datasource"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the local session database
	db, err := database.NewSqliteConnection(cfg.SessionDBPath)
	if err != nil {
		log.Fatal("Failed to open session database:", err)
	}

	sessionRepo, err := authRepo.NewSessionRepository(db)
	if err != nil {
		log.Fatal("Failed to migrate session store:", err)
	}

	// Shell state shared across controllers
	notifier := shell.NewNotifier()
	navigator := shell.NewNavigator()
	renderer := shell.NewRenderer(notifier, navigator)

	// Typed clients, one per external service
	authClient := backend.NewAuthClient(cfg.AuthBaseURL)
	journalClient := backend.NewJournalClient(cfg.JournalBaseURL)
	appointmentClient := backend.NewAppointmentClient(cfg.AppointmentsBaseURL)
	sentimentClient := backend.NewSentimentClient(cfg.SentimentBaseURL)

	// Data source selected once; controllers never branch on the mode
	source := datasource.New(cfg, journalClient, appointmentClient, sentimentClient, func() string {
		session, err := sessionRepo.Get()
		if err != nil {
			log.Printf("[WARN] failed to read session store: %v", err)
			return ""
		}
		return session.Token
	})

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(sessionRepo, authClient, navigator)
	journalUsecaseInstance := journalUsecase.NewJournalUsecase(source, notifier, navigator)
	appointmentUsecaseInstance := apptUsecase.NewAppointmentUsecase(source, notifier)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, journalUsecaseInstance, appointmentUsecaseInstance, renderer)

	log.Printf("Client shell starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start client shell:", err)
	}
}
