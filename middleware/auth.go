package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/floppoker-console/services"
)

type contextKey string

const stateContextKey contextKey = "state"

// Authenticator связывает токен запроса с состоянием сессии в хранилище.
type Authenticator struct {
	secret []byte
	store  *services.SessionStore
	logger *slog.Logger
}

func NewAuthenticator(secret string, store *services.SessionStore, logger *slog.Logger) *Authenticator {
	return &Authenticator{secret: []byte(secret), store: store, logger: logger}
}

// Secret нужен обработчику входа для подписи токена.
func (a *Authenticator) Secret() []byte {
	return a.secret
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Lookup возвращает состояние сессии запроса, если токен есть и сессия жива.
func (a *Authenticator) Lookup(r *http.Request) (*services.AppState, error) {
	raw := tokenFromRequest(r)
	if raw == "" {
		return nil, services.ErrSessionRequired
	}
	claims, err := ParseToken(a.secret, raw)
	if err != nil {
		a.logger.Debug("token rejected", slog.Any("error", err))
		return nil, services.ErrSessionRequired
	}
	st, err := a.store.Get(claims.SessionID)
	if err != nil {
		return nil, err
	}
	if st.User().ID != claims.UserID {
		return nil, services.ErrSessionRequired
	}
	return st, nil
}

// Authenticate пропускает только запросы с живой сессией.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := a.Lookup(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Требуется вход")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), st)))
	})
}

// RequireDirector ставится после Authenticate.
func RequireDirector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := StateFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Требуется вход")
			return
		}
		if !st.User().IsDirector() {
			writeError(w, http.StatusForbidden, "Доступно только директору")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithState(ctx context.Context, st *services.AppState) context.Context {
	return context.WithValue(ctx, stateContextKey, st)
}

func StateFromContext(ctx context.Context) (*services.AppState, error) {
	st, ok := ctx.Value(stateContextKey).(*services.AppState)
	if !ok || st == nil {
		return nil, errors.New("session state not found in context")
	}
	return st, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
