// Package main запускает HTTP-сервис записи на внеклассные активности.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activity-signup-service/internal/catalog"
	"activity-signup-service/internal/config"
	httpapi "activity-signup-service/internal/http"
	"activity-signup-service/internal/observability"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/service"
)

func main() {
	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// 1. Начальный каталог и хранилище составов, gauge размера состава обновляется под его блокировкой
	seed, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	store, err := repository.NewRosterStore(seed, observability.SetRosterSize)
	if err != nil {
		log.Fatalf("failed to init roster store: %v", err)
	}
	logger.Info("catalog loaded",
		slog.Int("activities", len(seed)),
		slog.String("source", catalogSource(cfg.CatalogFile)),
	)

	// 2. Сервис
	activityService := service.NewActivityService(store, logger)

	// 3. HTTP-обработчик
	handler := httpapi.NewHandler(activityService, logger, httpapi.Options{
		StaticDir:          cfg.StaticDir,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск сервера в горутине
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case err := <-serverErr:
		logger.Error("server error", slog.Any("err", err))
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}

func catalogSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
