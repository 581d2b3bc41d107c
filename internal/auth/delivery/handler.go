package delivery

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "mindcare-client/internal/auth/domain"
	authdto "mindcare-client/internal/auth/dto"
	"mindcare-client/internal/auth/usecase"
	"mindcare-client/internal/shell"
)

// AuthHandler owns the login/logout session transitions and the dashboard
// landing view.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	renderer    *shell.Renderer
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, renderer *shell.Renderer) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		renderer:    renderer,
	}
}

// SessionFromContext returns the session placed by RequireSession, or the
// stored session for public pages.
func SessionFromContext(c *gin.Context, authUsecase usecase.AuthUsecase) *authdomain.Session {
	if value, exists := c.Get("session"); exists {
		if session, ok := value.(*authdomain.Session); ok {
			return session
		}
	}
	return authUsecase.CurrentSession()
}

// ShowLogin renders the login view.
// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	session := h.authUsecase.CurrentSession()
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{"page": "login"}))
}

// Login performs the login transition and lands on the dashboard.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		h.renderer.Notifier().Error(shell.ErrorMessage(err))
		c.JSON(shell.HTTPStatus(err), gin.H{"error": "login failed"})
		return
	}

	h.renderer.Notifier().Success(fmt.Sprintf("Welcome back, %s", session.Username))
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister renders the registration view.
// GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	session := h.authUsecase.CurrentSession()
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":  "register",
		"roles": []authdomain.Role{authdomain.RoleUser, authdomain.RoleAdmin},
	}))
}

// Register creates an account and sends the user to the login view.
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.Register(c.Request.Context(), &req); err != nil {
		h.renderer.Notifier().Error(shell.ErrorMessage(err))
		c.JSON(shell.HTTPStatus(err), gin.H{"error": "registration failed"})
		return
	}

	h.renderer.Notifier().Success("Account created successfully")
	c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session and returns to the login view.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	h.renderer.Notifier().Success("You have been logged out safely")
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard renders the landing view with the feature cards.
// GET /dashboard
func (h *AuthHandler) Dashboard(c *gin.Context) {
	session := SessionFromContext(c, h.authUsecase)

	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":    "dashboard",
		"welcome": fmt.Sprintf("Welcome back, %s", session.Username),
		"cards": []gin.H{
			{"title": "Daily Journal", "path": "/journal", "description": "Express your thoughts freely"},
			{"title": "Mood History", "path": "/mood-history", "description": "Day-wise emotional patterns"},
			{"title": "Doctors", "path": "/doctors", "description": "Choose a professional"},
			{"title": "My Appointments", "path": "/my-appointments", "description": "Upcoming and past consultations"},
			{"title": "Support", "path": "/support", "description": "Calming resources when you need them"},
		},
	}))
}
