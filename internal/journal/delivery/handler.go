package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdelivery "mindcare-client/internal/auth/delivery"
	authusecase "mindcare-client/internal/auth/usecase"
	"mindcare-client/internal/journal/usecase"
	"mindcare-client/internal/shell"
)

// JournalHandler serves the journal and mood-history views.
type JournalHandler struct {
	journalUsecase usecase.JournalUsecase
	authUsecase    authusecase.AuthUsecase
	renderer       *shell.Renderer
}

func NewJournalHandler(journalUsecase usecase.JournalUsecase, authUsecase authusecase.AuthUsecase, renderer *shell.Renderer) *JournalHandler {
	return &JournalHandler{
		journalUsecase: journalUsecase,
		authUsecase:    authUsecase,
		renderer:       renderer,
	}
}

type saveEntryRequest struct {
	Content string `json:"content"`
}

// GetJournal renders the journal view. A failed fetch surfaces a notice and
// serves whatever was already loaded.
// GET /journal?limit=5
func (h *JournalHandler) GetJournal(c *gin.Context) {
	session := authdelivery.SessionFromContext(c, h.authUsecase)

	entries, err := h.journalUsecase.Entries(c.Request.Context())
	if err != nil {
		h.renderer.Notifier().Error("Failed to load journal")
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	visible := entries
	if limit > 0 && limit < len(entries) {
		visible = entries[:limit]
	}

	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page":    "journal",
		"entries": visible,
		"total":   len(entries),
	}))
}

// SaveEntry runs the two-phase save flow.
// POST /journal
func (h *JournalHandler) SaveEntry(c *gin.Context) {
	session := authdelivery.SessionFromContext(c, h.authUsecase)

	var req saveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.journalUsecase.SaveEntry(c.Request.Context(), req.Content)
	switch {
	case errors.Is(err, usecase.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Write something before saving", "field": "content"})
		return
	case errors.Is(err, usecase.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.renderer.Notifier().Error("Could not save entry")
		c.JSON(shell.HTTPStatus(err), gin.H{"error": "could not save entry"})
		return
	}

	h.renderer.Notifier().Success("Journal entry saved")

	entries, _ := h.journalUsecase.Entries(c.Request.Context())
	c.JSON(http.StatusCreated, h.renderer.Envelope(c, session, gin.H{
		"page":     "journal",
		"entries":  entries,
		"total":    len(entries),
		"analysis": decision,
	}))
}

// DeleteEntry removes one entry after explicit confirmation.
// DELETE /journal/:id?confirm=true
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}
	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))

	err = h.journalUsecase.DeleteEntry(c.Request.Context(), id, confirmed)
	switch {
	case errors.Is(err, usecase.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, usecase.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.renderer.Notifier().Error("Failed to delete entry")
		c.JSON(shell.HTTPStatus(err), gin.H{"error": "failed to delete entry"})
		return
	}

	h.renderer.Notifier().Success("Journal entry deleted")
	c.Status(http.StatusNoContent)
}

// MoodHistory renders the day-wise mood view.
// GET /mood-history
func (h *JournalHandler) MoodHistory(c *gin.Context) {
	session := authdelivery.SessionFromContext(c, h.authUsecase)

	days, err := h.journalUsecase.MoodHistory(c.Request.Context())
	if err != nil {
		h.renderer.Notifier().Error("Failed to load mood history")
	}

	c.JSON(http.StatusOK, h.renderer.Envelope(c, session, gin.H{
		"page": "mood-history",
		"days": days,
	}))
}
