// File: ibelong/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ibelong/config"
	"ibelong/directory"
	"ibelong/handlers"
	"ibelong/middleware"
	"ibelong/routes"
	"ibelong/services/catalog"
	"ibelong/services/journal"
	"ibelong/services/locale"
	"ibelong/services/notice"
	"ibelong/storage"
	"ibelong/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Durable key-value storage backing the journal, check-in, and locale stores.
	var store storage.Store
	var err error
	switch config.AppConfig.StorageBackend {
	case "redis":
		store, err = storage.NewRedisStore(
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
			config.AppConfig.RedisDB,
		)
	case "memory":
		store = storage.NewMemoryStore()
	default:
		store, err = storage.NewSQLiteStore(config.AppConfig.SQLitePath)
	}
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Remote session directory client. The bearer credential is established
	// by the external auth layer and surfaced through the environment here.
	directoryClient := directory.NewHTTPClient(
		config.AppConfig.DirectoryURL,
		time.Duration(config.AppConfig.DirectoryTimeoutMS)*time.Millisecond,
		func() string { return os.Getenv("DIRECTORY_TOKEN") },
	)

	// services.
	catalogService := catalog.NewDefaultSessionCatalogService(directoryClient, logger)
	journalService := journal.NewDefaultJournalService(
		store, logger,
		time.Duration(config.AppConfig.UnloadDebounceMS)*time.Millisecond,
	)
	noticeService := notice.NewDefaultNoticeService(store, logger)
	localeService := locale.NewDefaultLocaleService(store, logger, nil)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	localeService.Hydrate(startCtx)
	journalService.Load(startCtx)
	noticeService.Load(startCtx)
	catalogService.FetchSessions(startCtx)
	cancelStart()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService),
		Journal: handlers.NewJournalHandler(journalService),
		Notice:  handlers.NewNoticeHandler(noticeService),
		Locale:  handlers.NewLocaleHandler(localeService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	// Flush any unsaved journal content before the process exits.
	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	journalService.Flush(flushCtx)
	cancelFlush()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
