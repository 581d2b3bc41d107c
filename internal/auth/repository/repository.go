package repository

import authdomain "mindcare-client/internal/auth/domain"

// SessionRepository is the durable local session store. It holds exactly
// three keys (token, username, role) and is the only place login state
// persists between runs.
//
// Writes happen only on login and logout; everything else just reads.
type SessionRepository interface {
	// Get returns the stored session. Missing keys come back empty; a
	// session without a token is logged-out state.
	Get() (*authdomain.Session, error)

	// Set stores all three keys in one transaction.
	Set(token, username string, role authdomain.Role) error

	// Clear removes all three keys in one transaction. There is never an
	// observable state where the token is gone but the username remains.
	Clear() error
}
