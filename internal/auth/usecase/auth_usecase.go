package usecase

import (
	"context"
	"errors"
	"log"

	authdomain "mindcare-client/internal/auth/domain"
	authdto "mindcare-client/internal/auth/dto"
	"mindcare-client/internal/auth/repository"
	"mindcare-client/internal/shell"
	"mindcare-client/pkg/backend"
)

// ErrSessionExpired marks an absent, malformed or expired token. Handling
// is always the same: discard session state and send the user to /login.
var ErrSessionExpired = errors.New("session expired")

// authUsecase implements AuthUsecase
type authUsecase struct {
	sessions  repository.SessionRepository
	client    *backend.AuthClient
	navigator *shell.Navigator
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(sessions repository.SessionRepository, client *backend.AuthClient, navigator *shell.Navigator) AuthUsecase {
	return &authUsecase{
		sessions:  sessions,
		client:    client,
		navigator: navigator,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdomain.Session, error) {
	resp, err := u.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Set(resp.Token, resp.Username, resp.Role); err != nil {
		return nil, err
	}
	return &authdomain.Session{
		Token:    resp.Token,
		Username: resp.Username,
		Role:     resp.Role,
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) error {
	if req.Role == "" {
		req.Role = string(authdomain.RoleUser)
	}
	return u.client.Register(ctx, req)
}

// Logout clears the session store atomically and drops any pending delayed
// navigation so it cannot fire against a logged-out shell.
func (u *authUsecase) Logout() error {
	u.navigator.Cancel()
	return u.sessions.Clear()
}

func (u *authUsecase) CurrentSession() *authdomain.Session {
	session, err := u.sessions.Get()
	if err != nil {
		log.Printf("[WARN] failed to read session store: %v", err)
		return &authdomain.Session{}
	}
	return session
}

func (u *authUsecase) ValidSession() (*authdomain.Session, error) {
	session := u.CurrentSession()
	if IsTokenValid(session.Token) {
		return session, nil
	}

	// Stale username/role must not outlive the token.
	if err := u.sessions.Clear(); err != nil {
		log.Printf("[WARN] failed to clear stale session: %v", err)
	}
	return nil, ErrSessionExpired
}
