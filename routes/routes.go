package routes

import (
	"net/http"
	"time"

	"ibelong/handlers"
	"ibelong/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterJournalRoutes(r, hb)
	RegisterNoticeRoutes(r, hb)
	RegisterLocaleRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm iBelong"})
	})
}

// RegisterSessionRoutes registers the catalog and enrollment endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.GET("", hb.Catalog.ListSessions)
		api.GET("/:id", hb.Catalog.GetSession)
		api.POST("/refresh", hb.Catalog.RefreshSessions)

		// Enrollment mutates local state; require the established credential.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/:id/enroll", hb.Catalog.Enroll)
		protected.GET("/enrollment", hb.Catalog.EnrollmentState)
		protected.POST("/enrollment/clear-last", hb.Catalog.ClearLastEnrolled)
	}
}

// RegisterProviderRoutes registers the provider directory endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Catalog.ListProviders)
		api.GET("/:id", hb.Catalog.GetProvider)
	}
}

// RegisterJournalRoutes registers the free-text "unload" endpoints.
func RegisterJournalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/unload")
	{
		api.GET("/entries", hb.Journal.ListEntries)
		api.GET("/active", hb.Journal.GetActive)
		api.PUT("/content", hb.Journal.SetContent)
		api.POST("/flush", hb.Journal.Flush)
		api.POST("/new", hb.Journal.NewEntry)
		api.POST("/open/:id", hb.Journal.OpenEntry)
		api.POST("/delete/request", hb.Journal.RequestDelete)
		api.POST("/delete/confirm", hb.Journal.ConfirmDelete)
		api.POST("/delete/cancel", hb.Journal.CancelDelete)
	}
}

// RegisterNoticeRoutes registers the structured check-in endpoints.
func RegisterNoticeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notice")
	{
		api.GET("/state", hb.Notice.GetState)
		api.GET("/entries", hb.Notice.ListEntries)
		api.GET("/trend", hb.Notice.Trend)
		api.POST("/emotions/toggle", hb.Notice.ToggleEmotion)
		api.POST("/continue", hb.Notice.Continue)
		api.POST("/intensity", hb.Notice.SelectIntensity)
		api.PUT("/body-note", hb.Notice.SetBodyNote)
		api.POST("/back", hb.Notice.Back)
		api.POST("/submit", hb.Notice.Submit)
		api.POST("/again", hb.Notice.CheckInAgain)
	}
}

// RegisterLocaleRoutes registers the language preference endpoints.
func RegisterLocaleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locale")
	{
		api.GET("", hb.Locale.GetLocale)
		api.PUT("", hb.Locale.SetLocale)
	}
}
