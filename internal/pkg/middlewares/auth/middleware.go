package auth

import (
	"context"
	"net/http"
	"strings"

	"adminpanel/internal/entities"
	"adminpanel/pkg/logger"

	"github.com/gorilla/websocket"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, principal entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(entities.Principal)
	return principal, ok
}

// Middleware пропускает только запросы с валидным Bearer-токеном
// и кладет пользователя в контекст.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeUnauthorized(w)
				return
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("rejected session token")
				writeUnauthorized(w)
				return
			}

			principal := entities.Principal{
				UserID:    claims.UserID,
				Email:     claims.Email,
				Role:      entities.Role(claims.Role),
				BranchIDs: claims.BranchIDs,
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// bearerToken браузер не умеет ставить заголовки на websocket-апгрейд,
// поэтому для него токен допускается в ?token=.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" && websocket.IsWebSocketUpgrade(r) {
		token := r.URL.Query().Get("token")
		return token, token != ""
	}
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
