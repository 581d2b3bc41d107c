package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdomain "mindcare-client/internal/auth/domain"
	authdto "mindcare-client/internal/auth/dto"
	"mindcare-client/internal/auth/usecase"
)

type stubAuthUsecase struct {
	session *authdomain.Session
	valid   bool
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdomain.Session, error) {
	return nil, nil
}
func (s *stubAuthUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) error {
	return nil
}
func (s *stubAuthUsecase) Logout() error { return nil }
func (s *stubAuthUsecase) CurrentSession() *authdomain.Session {
	if s.session == nil {
		return &authdomain.Session{}
	}
	return s.session
}
func (s *stubAuthUsecase) ValidSession() (*authdomain.Session, error) {
	if !s.valid {
		return nil, usecase.ErrSessionExpired
	}
	return s.session, nil
}

func guardedEngine(stub *stubAuthUsecase, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard", RequireSession(stub), func(c *gin.Context) {
		*reached = true
		c.String(http.StatusOK, "dashboard")
	})
	return r
}

func TestRequireSessionRendersProtectedView(t *testing.T) {
	stub := &stubAuthUsecase{
		session: &authdomain.Session{Token: "token", Username: "alice", Role: authdomain.RoleUser},
		valid:   true,
	}
	reached := false
	r := guardedEngine(stub, &reached)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSessionRedirectsWhenInvalid(t *testing.T) {
	stub := &stubAuthUsecase{valid: false}
	reached := false
	r := guardedEngine(stub, &reached)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	// nothing from the protected subtree renders
	assert.False(t, reached)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
