package app

import (
	"log/slog"
	"net/http"

	"github.com/lumenapp/lumen/internal/config"
	authsvc "github.com/lumenapp/lumen/internal/service/auth"
	"github.com/lumenapp/lumen/internal/transport/middleware"
	"github.com/lumenapp/lumen/internal/transport/rest"
)

// handlers groups everything the HTTP router mounts.
type handlers struct {
	health   *rest.HealthHandler
	generate *rest.GenerateHandler
	auth     *rest.AuthHandler
	saved    *rest.SavedHandler
}

// newRouter builds the gateway mux and wraps it in the middleware chain.
// The token validator runs for every request; /me routes additionally
// require a resolved user.
func newRouter(
	logger *slog.Logger,
	cfg *config.Config,
	h handlers,
	authSvc *authsvc.Service,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health.Health)
	mux.HandleFunc("GET /ready", h.health.Ready)

	mux.Handle("POST /ai/generate", limiter.Limit(cfg.AI.RateLimitPerMinute)(http.HandlerFunc(h.generate.Generate)))

	mux.HandleFunc("POST /auth/google", h.auth.Google)
	mux.HandleFunc("POST /auth/apple", h.auth.Apple)

	mux.HandleFunc("GET /me/saved", h.saved.List)
	mux.HandleFunc("PUT /me/saved", h.saved.Save)
	mux.HandleFunc("POST /me/saved/toggle", h.saved.Toggle)
	mux.HandleFunc("GET /me/saved/{id}", h.saved.Status)
	mux.HandleFunc("DELETE /me/saved/{id}", h.saved.Delete)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc),
	)(mux)
}
