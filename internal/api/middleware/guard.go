package middleware

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/guard"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// Guard защищает страницы по состоянию сессии
type Guard struct {
	validator UserValidator
	metrics   Metrics
	logger    Logger
	loading   http.Handler
}

// NewGuard создает guard. validator != nil включает проверку токена через
// GET /validate-user на каждый защищенный запрос. loading рисует заглушку загрузки
// и должен ответить 503; nil означает текстовую заглушку.
func NewGuard(validator UserValidator, metrics Metrics, logger Logger, loading http.Handler) *Guard {
	if loading == nil {
		loading = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "Cargando…", http.StatusServiceUnavailable)
		})
	}
	return &Guard{
		validator: validator,
		metrics:   metrics,
		logger:    logger,
		loading:   loading,
	}
}

// RequireAuth пропускает только вошедших пользователей
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return g.protect(guard.PolicyAuthenticated, next)
}

// RequireAdmin пропускает только пользователей с ролью admin
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return g.protect(guard.PolicyAdmin, next)
}

func (g *Guard) protect(policy guard.Policy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := guard.StateLoading
		roles := domain.RoleSet(nil)

		if auth, ok := GetAuth(r.Context()); ok {
			g.revalidate(r, auth)
			state = auth.State
			roles = auth.Snapshot.Roles
		}

		outcome := guard.Evaluate(state, roles, policy)
		if g.metrics != nil {
			g.metrics.ObserveGuard(policy.String(), outcome.String())
		}

		switch outcome {
		case guard.OutcomeRender:
			next.ServeHTTP(w, r)
		case guard.OutcomeRedirectLogin, guard.OutcomeRedirectHome:
			g.logger.Info("%s %s - Guard %s: %s", r.Method, r.URL.Path, policy, outcome)
			http.Redirect(w, r, outcome.Location(), http.StatusSeeOther)
		case guard.OutcomeLoading:
			w.Header().Set("Retry-After", "1")
			g.loading.ServeHTTP(w, r)
		}
	})
}

// revalidate сверяет кэшированную сессию с REST API.
// 401 очищает сессию, остальные ошибки оставляют кэш как есть.
func (g *Guard) revalidate(r *http.Request, auth *Auth) {
	if g.validator == nil || auth.State != guard.StateAuthenticated {
		return
	}

	ctx := r.Context()
	resp, err := g.validator.ValidateUser(ctx, auth.Snapshot.Token)
	switch {
	case err == nil:
		roles, unknown := domain.ParseRoleSet(resp.Roles)
		if len(unknown) > 0 {
			g.logger.Warn("%s %s - validate-user returned unknown roles: %v", r.Method, r.URL.Path, unknown)
		}
		if err := auth.Store.SetSession(ctx, auth.Snapshot.Token, resp.User, roles.List()); err != nil {
			g.logger.Error("%s %s - Failed to refresh session: %v", r.Method, r.URL.Path, err)
			return
		}
		user := resp.User
		auth.Snapshot.User = &user
		auth.Snapshot.Roles = roles
		auth.Snapshot.UnknownRoles = unknown

	case errors.Is(err, marketapi.ErrUnauthorized):
		g.logger.Info("%s %s - Session token rejected by API, clearing session", r.Method, r.URL.Path)
		if err := auth.Store.ClearSession(ctx); err != nil {
			g.logger.Error("%s %s - Failed to clear session: %v", r.Method, r.URL.Path, err)
		}
		auth.Reset()

	default:
		g.logger.Warn("%s %s - validate-user failed, using cached session: %v", r.Method, r.URL.Path, err)
	}
}
