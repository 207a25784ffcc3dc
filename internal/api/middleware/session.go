package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/guard"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
)

type authKey struct{}

// Auth сессия запроса: хранилище, прочитанный снимок и состояние авторизации
type Auth struct {
	Store    *session.Store
	Snapshot *session.Snapshot
	State    guard.State
}

// Reset переводит запрос в неавторизованное состояние после очистки сессии
func (a *Auth) Reset() {
	a.Snapshot = &session.Snapshot{}
	a.State = guard.StateUnauthenticated
}

// WithAuth кладет сессию в контекст
func WithAuth(ctx context.Context, auth *Auth) context.Context {
	return context.WithValue(ctx, authKey{}, auth)
}

// GetAuth достает сессию из контекста. ok=false означает, что сессия еще не разрешена.
func GetAuth(ctx context.Context) (*Auth, bool) {
	auth, ok := ctx.Value(authKey{}).(*Auth)
	return auth, ok && auth != nil
}

// Session открывает хранилище сессии и один раз на запрос вычисляет состояние авторизации.
// Если хранилище не открылось, состояние в контекст не кладется и защищенные страницы
// показывают заглушку загрузки.
func Session(backend session.Backend, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			storage, err := backend.Open(w, r)
			if err != nil {
				logger.Error("%s %s - Failed to open session storage: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			store := session.NewStore(storage)
			auth := &Auth{Store: store}

			snapshot, err := store.Load(r.Context())
			switch {
			case err == nil:
				auth.Snapshot = snapshot
			case errors.Is(err, session.ErrMalformedSession):
				logger.Warn("%s %s - Malformed session, clearing: %v", r.Method, r.URL.Path, err)
				if clearErr := store.ClearSession(r.Context()); clearErr != nil {
					logger.Error("%s %s - Failed to clear malformed session: %v", r.Method, r.URL.Path, clearErr)
				}
				auth.Snapshot = &session.Snapshot{}
			default:
				logger.Error("%s %s - Failed to load session: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			if len(auth.Snapshot.UnknownRoles) > 0 {
				logger.Warn("%s %s - Session holds unknown roles: %v", r.Method, r.URL.Path, auth.Snapshot.UnknownRoles)
			}

			if auth.Snapshot.IsAuthenticated() {
				auth.State = guard.StateAuthenticated
			} else {
				auth.State = guard.StateUnauthenticated
			}

			next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), auth)))
		})
	}
}
