package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authusecase "mindcare-client/internal/auth/usecase"
	"mindcare-client/internal/shell"
	"mindcare-client/internal/support/domain"
)

// SupportHandler serves the support flow. None of these views are guarded.
type SupportHandler struct {
	authUsecase authusecase.AuthUsecase
	renderer    *shell.Renderer
}

func NewSupportHandler(authUsecase authusecase.AuthUsecase, renderer *shell.Renderer) *SupportHandler {
	return &SupportHandler{
		authUsecase: authUsecase,
		renderer:    renderer,
	}
}

// Choices renders the support entry view.
// GET /support
func (h *SupportHandler) Choices(c *gin.Context) {
	session := h.authUsecase.CurrentSession()
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":    "support",
		"heading": "How would you like support right now?",
		"choices": domain.Choices(),
	}))
}

// Music renders the calming audio view.
// GET /support/music
func (h *SupportHandler) Music(c *gin.Context) {
	session := h.authUsecase.CurrentSession()
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":   "support-music",
		"tracks": domain.MusicTracks(),
	}))
}

// Videos renders the guided video view.
// GET /support/videos
func (h *SupportHandler) Videos(c *gin.Context) {
	session := h.authUsecase.CurrentSession()
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":   "support-videos",
		"videos": domain.GuidedVideos(),
	}))
}

// Doctors renders the doctor locator view.
// GET /support/doctors
func (h *SupportHandler) Doctors(c *gin.Context) {
	session := h.authUsecase.CurrentSession()
	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":    "support-doctors",
		"locator": domain.DoctorLocator(),
	}))
}
