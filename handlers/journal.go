package handlers

import (
	"net/http"

	"ibelong/services/journal"
	"ibelong/utils"

	"github.com/gin-gonic/gin"
)

// JournalHandler exposes the free-text "unload" store.
type JournalHandler struct {
	Svc journal.JournalService
}

func NewJournalHandler(svc journal.JournalService) *JournalHandler {
	return &JournalHandler{Svc: svc}
}

// ListEntries returns the collection, newest first.
func (h *JournalHandler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Svc.Entries()})
}

// GetActive returns the entry currently in the editor plus the live content.
func (h *JournalHandler) GetActive(c *gin.Context) {
	entry, ok := h.Svc.Active()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil, "content": h.Svc.Content()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry, "content": h.Svc.Content()})
}

// SetContent applies an edit to the active entry (creating one on first
// non-blank content) and restarts the autosave debounce.
func (h *JournalHandler) SetContent(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.Svc.SetContent(c.Request.Context(), input.Content)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Flush persists unsaved content synchronously (used on navigation away).
func (h *JournalHandler) Flush(c *gin.Context) {
	h.Svc.Flush(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// NewEntry flushes the current entry and opens a fresh one.
func (h *JournalHandler) NewEntry(c *gin.Context) {
	h.Svc.NewEntry(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// OpenEntry makes a past entry active.
func (h *JournalHandler) OpenEntry(c *gin.Context) {
	if !h.Svc.Open(c.Request.Context(), c.Param("id")) {
		utils.JSONError(c, http.StatusNotFound, "entry not found", c.Param("id"))
		return
	}
	entry, _ := h.Svc.Active()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

// RequestDelete arms the two-step deletion of the active entry.
func (h *JournalHandler) RequestDelete(c *gin.Context) {
	if !h.Svc.RequestDelete() {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "no persisted entry to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ConfirmDelete completes a previously requested deletion.
func (h *JournalHandler) ConfirmDelete(c *gin.Context) {
	if !h.Svc.ConfirmDelete(c.Request.Context()) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "no delete pending"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelDelete abandons a pending deletion.
func (h *JournalHandler) CancelDelete(c *gin.Context) {
	h.Svc.CancelDelete()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
