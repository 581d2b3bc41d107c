package usecase

import (
	"context"

	authdomain "mindcare-client/internal/auth/domain"
	authdto "mindcare-client/internal/auth/dto"
)

// AuthUsecase owns the login/logout session transitions and session
// validity. It is the only writer of the session store.
type AuthUsecase interface {
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdomain.Session, error)
	Register(ctx context.Context, req *authdto.RegisterRequest) error
	Logout() error

	// CurrentSession returns the stored session as-is, logged-out on
	// store errors. It does not check token validity.
	CurrentSession() *authdomain.Session

	// ValidSession returns the session when its token is valid. An
	// absent, malformed or expired token discards the stored state and
	// returns ErrSessionExpired.
	ValidSession() (*authdomain.Session, error)
}
