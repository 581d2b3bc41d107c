package datasource

import (
	"log"

	"mindcare-client/pkg/backend"
	"mindcare-client/pkg/config"
)

// New selects the data source once at startup. Controllers downstream are
// unaware which implementation is active.
func New(cfg *config.Config, journal *backend.JournalClient, appointments *backend.AppointmentClient, sentiment *backend.SentimentClient, token TokenProvider) Source {
	if cfg.DemoMode {
		log.Println("[WARN] demo mode enabled, serving data from in-memory fixtures")
		return NewMemorySource()
	}
	return NewNetworkedSource(journal, appointments, sentiment, token)
}
