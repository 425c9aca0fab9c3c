package handlers

import (
	"net/http"

	"ibelong/models"
	"ibelong/services/notice"
	"ibelong/utils"

	"github.com/gin-gonic/gin"
)

// NoticeHandler exposes the structured check-in store.
type NoticeHandler struct {
	Svc notice.NoticeService
}

func NewNoticeHandler(svc notice.NoticeService) *NoticeHandler {
	return &NoticeHandler{Svc: svc}
}

// GetState reports the flow position and current selections.
func (h *NoticeHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"step":     h.Svc.Step(),
		"emotions": h.Svc.SelectedEmotions(),
	})
}

// ToggleEmotion selects or deselects a tag on the emotions step.
func (h *NoticeHandler) ToggleEmotion(c *gin.Context) {
	var input struct {
		Emotion string `json:"emotion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !h.Svc.ToggleEmotion(input.Emotion) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "unknown emotion or wrong step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "emotions": h.Svc.SelectedEmotions()})
}

// Continue advances one step forward.
func (h *NoticeHandler) Continue(c *gin.Context) {
	if !h.Svc.Continue() {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "cannot continue from this step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "step": h.Svc.Step()})
}

// SelectIntensity records the single-choice intensity.
func (h *NoticeHandler) SelectIntensity(c *gin.Context) {
	var input struct {
		Intensity models.Intensity `json:"intensity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !h.Svc.SelectIntensity(input.Intensity) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "invalid intensity or wrong step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "step": h.Svc.Step()})
}

// SetBodyNote records the optional note on the body step.
func (h *NoticeHandler) SetBodyNote(c *gin.Context) {
	var input struct {
		BodyNote string `json:"bodyNote"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !h.Svc.SetBodyNote(input.BodyNote) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "wrong step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Back walks one step towards emotions.
func (h *NoticeHandler) Back(c *gin.Context) {
	if !h.Svc.Back() {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "cannot go back from this step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "step": h.Svc.Step()})
}

// Submit finalizes and persists the check-in.
func (h *NoticeHandler) Submit(c *gin.Context) {
	entry, ok := h.Svc.Submit(c.Request.Context())
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "check-in not ready to submit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

// CheckInAgain resets the flow for another check-in.
func (h *NoticeHandler) CheckInAgain(c *gin.Context) {
	h.Svc.CheckInAgain()
	c.JSON(http.StatusOK, gin.H{"success": true, "step": h.Svc.Step()})
}

// ListEntries returns the history, newest first.
func (h *NoticeHandler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Svc.Entries()})
}

// Trend returns the trailing-7-day emotion tally.
func (h *NoticeHandler) Trend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Svc.Trend()})
}
