package handlers

import (
	"net/http"

	"ibelong/models"
	"ibelong/services/locale"
	"ibelong/utils"

	"github.com/gin-gonic/gin"
)

// LocaleHandler exposes the language preference store.
type LocaleHandler struct {
	Svc locale.LocaleService
}

func NewLocaleHandler(svc locale.LocaleService) *LocaleHandler {
	return &LocaleHandler{Svc: svc}
}

// GetLocale reports the preference and the active layout direction.
func (h *LocaleHandler) GetLocale(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"locale":   h.Svc.Locale(),
		"rtl":      h.Svc.IsRTLActive(),
		"hydrated": h.Svc.IsHydrated(),
	})
}

// SetLocale switches the preference. requiresReload tells the client whether
// the text direction flipped and a restart was triggered.
func (h *LocaleHandler) SetLocale(c *gin.Context) {
	var input struct {
		Locale models.Locale `json:"locale"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.Locale.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid locale", string(input.Locale))
		return
	}
	reloaded := h.Svc.SetLocale(c.Request.Context(), input.Locale)
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"locale":         h.Svc.Locale(),
		"requiresReload": reloaded,
	})
}
