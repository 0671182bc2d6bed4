package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumenapp/lumen/internal/adapter/memory"
	"github.com/lumenapp/lumen/internal/adapter/postgres"
	"github.com/lumenapp/lumen/internal/adapter/postgres/savedphrase"
	"github.com/lumenapp/lumen/internal/adapter/provider/anthropic"
	"github.com/lumenapp/lumen/internal/adapter/provider/apple"
	"github.com/lumenapp/lumen/internal/adapter/provider/gemini"
	"github.com/lumenapp/lumen/internal/adapter/provider/google"
	"github.com/lumenapp/lumen/internal/adapter/provider/ollama"
	"github.com/lumenapp/lumen/internal/adapter/provider/openai"
	"github.com/lumenapp/lumen/internal/auth"
	"github.com/lumenapp/lumen/internal/config"
	authsvc "github.com/lumenapp/lumen/internal/service/auth"
	"github.com/lumenapp/lumen/internal/service/generation"
	"github.com/lumenapp/lumen/internal/service/library"
	"github.com/lumenapp/lumen/internal/transport/middleware"
	"github.com/lumenapp/lumen/internal/transport/rest"
)

// Run is the gateway entry point. It loads configuration, connects the
// optional database, wires providers and services, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	authService := newAuthService(cfg.Auth, logger)
	h := handlers{
		generate: rest.NewGenerateHandler(newGenerationService(cfg.AI, logger), logger),
		auth:     rest.NewAuthHandler(authService, logger),
		saved:    rest.NewSavedHandler(newLibraryService(pool, logger), logger),
	}
	if pool != nil {
		h.health = rest.NewHealthHandler(pool, cfg.Env, Version)
	} else {
		h.health = rest.NewHealthHandler(nil, cfg.Env, Version)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(logger, cfg, h, authService, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// openDatabase connects and migrates when a DSN is configured. It returns a
// nil pool otherwise.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !cfg.Enabled() {
		logger.Warn("no database configured, saved phrases are kept in memory")
		return nil, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	return pool, nil
}

func newGenerationService(cfg config.AIConfig, logger *slog.Logger) *generation.Service {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	ollamaProvider, err := ollama.NewProvider(cfg.Ollama.Host, cfg.Ollama.Model, logger)
	if err != nil {
		logger.Warn("ollama disabled", slog.String("error", err.Error()))
		ollamaProvider, _ = ollama.NewProvider("", cfg.Ollama.Model, logger)
	}

	return generation.NewService(logger, cfg.ProvidersForTask,
		openai.NewProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, httpClient, logger),
		gemini.NewProvider(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, httpClient, logger),
		anthropic.NewProvider(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, cfg.Anthropic.Model, httpClient, logger),
		ollamaProvider,
	)
}

func newAuthService(cfg config.AuthConfig, logger *slog.Logger) *authsvc.Service {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL)
	return authsvc.NewService(logger, jwtManager,
		google.NewVerifier(cfg.GoogleClientID, logger),
		apple.NewVerifier(cfg.AppleClientID, logger),
	)
}

func newLibraryService(pool *pgxpool.Pool, logger *slog.Logger) *library.Service {
	if pool == nil {
		return library.NewService(logger, memory.NewSavedPhrases(), memory.NewTxManager())
	}
	return library.NewService(logger, savedphrase.New(pool), postgres.NewTxManager(pool))
}
