package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/tailor-records/config"
	"github.com/yeremiapane/tailor-records/database"
	"github.com/yeremiapane/tailor-records/router"
	"github.com/yeremiapane/tailor-records/utils"
)

func main() {
	// Load .env before reading any configuration
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("")
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)
	if dotenvErr != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Setup(db); err != nil {
		_ = config.CloseDB(db)
		utils.ErrorLogger.Fatalf("Failed to prepare database: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + config.ListenPort,
		Handler: router.SetupRouter(db, cfg),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		utils.InfoLogger.Printf("Listening on port %s", config.ListenPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		utils.InfoLogger.Println("Shutting down...")
	case err := <-serveErr:
		utils.ErrorLogger.Errorf("Server stopped: %v", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Error during server shutdown: %v", err)
	}

	if err := config.CloseDB(db); err != nil {
		utils.ErrorLogger.Errorf("Error closing database: %v", err)
		exitCode = 1
	} else {
		utils.InfoLogger.Println("Database closed.")
	}

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
