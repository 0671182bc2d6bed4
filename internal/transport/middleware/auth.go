package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lumenapp/lumen/internal/auth"
	"github.com/lumenapp/lumen/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth resolves a bearer app token into a user key on the request context.
// Requests without a bearer token pass through anonymously; handlers decide
// whether a user is required.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if f := logFieldsFromCtx(r.Context()); f != nil {
				f.userKey = identity.UserKey()
			}
			ctx := ctxutil.WithUserKey(r.Context(), identity.UserKey())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
