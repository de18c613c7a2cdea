// Package main запускает HTTP-сервер сервиса мотомастерской.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/motoshop-system/internal/assistant"
	"github.com/mmeshcher/motoshop-system/internal/config"
	"github.com/mmeshcher/motoshop-system/internal/handler"
	"github.com/mmeshcher/motoshop-system/internal/service"
	"github.com/mmeshcher/motoshop-system/internal/storage"
	"github.com/mmeshcher/motoshop-system/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	var kv store.Storage
	if cfg.DatabaseURI != "" {
		pg, err := storage.NewPostgresStore(cfg.DatabaseURI)
		if err != nil {
			sugar.Fatalw("database initialization error", "error", err.Error())
		}
		kv = pg
	} else {
		kv = storage.NewFileStore(cfg.FileStoragePath)
	}
	defer kv.Close()

	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	bookings := store.NewBookingStore(startCtx, kv, sugar)
	shopping := store.NewShoppingStore(startCtx, kv, sugar)
	startCancel()

	var ai service.Assistant
	if cfg.AIAPIKey != "" {
		ai = assistant.NewClient(cfg.AIAddress, cfg.AIAPIKey)
	} else {
		sugar.Info("AI API key is not set, assistant endpoints are disabled")
	}

	svc := service.NewService(bookings, shopping, ai)

	h := handler.NewHandler(svc, logger)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting motoshop server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
