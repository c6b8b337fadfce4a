package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordertracker/cmd"
	"ordertracker/internal/pkg/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

//	@title			Order Tracker API
//	@version		1.0
//	@description	Order lifecycle tracking with operator notifications.
//	@BasePath		/
func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = zapLogger.Sync() }()

	ctx := context.Background()
	app, err := cmd.NewCompositionRoot(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("building application", zap.Error(err))
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		zapLogger.Fatal("building jobs", zap.Error(err))
	}
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("starting jobs", zap.Error(err))
	}

	e := app.CreateHTTPServer()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		zapLogger.Info("http server listening", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	jobManager.StopAll()
	if err = app.Close(shutdownCtx); err != nil {
		zapLogger.Error("closing store failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
