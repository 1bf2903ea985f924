package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/floppoker-console/apiclient"
	"github.com/Dosada05/floppoker-console/config"
	"github.com/Dosada05/floppoker-console/handlers"
	"github.com/Dosada05/floppoker-console/middleware"
	api "github.com/Dosada05/floppoker-console/routes"
	"github.com/Dosada05/floppoker-console/services"
)

const sweepInterval = 5 * time.Minute // How often expired sessions are dropped

// @title Floppoker Console API
// @version 1.0
// @description Консоль покерного клуба поверх API бэкенда.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("backend_url", cfg.BackendURL),
		slog.Duration("backend_timeout", cfg.BackendTimeout),
	)

	// Клиент бэкенда
	backend, err := apiclient.New(cfg.BackendURL, cfg.BackendTimeout, logger)
	if err != nil {
		logger.Error("failed to create backend client", slog.Any("error", err))
		os.Exit(1)
	}

	store := services.NewSessionStore(cfg.SessionTTL)
	auth := middleware.NewAuthenticator(cfg.JWTSecretKey, store, logger)

	// Инициализация сервисов
	sessionService := services.NewSessionService(backend, store, logger)
	tournamentService := services.NewTournamentService(backend, logger)
	formService := services.NewFormService(backend)
	ratingService := services.NewRatingService(backend)
	playerService := services.NewPlayerService(backend)
	logger.Info("Services initialized")

	// Очистка истёкших сессий
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		logger.Info("session sweeper started", slog.Duration("interval", sweepInterval))

		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if removed := store.Sweep(); removed > 0 {
					logger.Info("expired sessions removed", slog.Int("count", removed), slog.Int("active", store.Len()))
				}
			}
		}
	}()

	// Инициализация обработчиков HTTP
	authHandler := handlers.NewAuthHandler(sessionService, auth, cfg.SessionTTL)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	formHandler := handlers.NewFormHandler(formService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		auth,
		authHandler,
		tournamentHandler,
		formHandler,
		ratingHandler,
		playerHandler,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера. WriteTimeout больше таймаута бэкенда:
	// детальный просмотр делает до двух запросов.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2*cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
