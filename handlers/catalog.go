package handlers

import (
	"net/http"

	"ibelong/services/catalog"
	"ibelong/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the session catalog & enrollment store.
type CatalogHandler struct {
	Svc catalog.SessionCatalogService
}

func NewCatalogHandler(svc catalog.SessionCatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListSessions returns the current session list.
func (h *CatalogHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.Svc.Sessions(),
	})
}

// RefreshSessions re-fetches the list from the directory. Fetch failure is a
// non-event for the caller: the pre-existing list stays valid.
func (h *CatalogHandler) RefreshSessions(c *gin.Context) {
	h.Svc.FetchSessions(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.Svc.Sessions(),
	})
}

// GetSession looks up one session by id.
func (h *CatalogHandler) GetSession(c *gin.Context) {
	session, ok := h.Svc.GetSession(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "session not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": session})
}

// Enroll reserves a slot. A full or unknown session reports failure in the
// body, not as a server error.
func (h *CatalogHandler) Enroll(c *gin.Context) {
	id := c.Param("id")
	if !h.Svc.Enroll(id) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "session is full or does not exist",
		})
		return
	}
	session, _ := h.Svc.GetSession(id)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": session})
}

// ClearLastEnrolled drops the transient celebration marker.
func (h *CatalogHandler) ClearLastEnrolled(c *gin.Context) {
	h.Svc.ClearLastEnrolledID()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListProviders returns the provider directory.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Svc.Providers()})
}

// GetProvider looks up one provider by id.
func (h *CatalogHandler) GetProvider(c *gin.Context) {
	provider, ok := h.Svc.GetProvider(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "provider not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": provider})
}

// EnrollmentState reports the locally-enrolled ids and the celebration marker.
func (h *CatalogHandler) EnrollmentState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"enrolledIds":    h.Svc.EnrolledIDs(),
		"lastEnrolledId": h.Svc.LastEnrolledID(),
	})
}
