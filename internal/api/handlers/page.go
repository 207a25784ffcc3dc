package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// Сообщения, общие для всех страниц
const (
	MsgGeneric  = "No se pudo completar la operación. Inténtalo de nuevo más tarde."
	MsgNotFound = "Página no encontrada"
)

// Renderer рисует HTML страницы
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, page views.Page)
}

// NewPage заполняет данные шапки из сессии запроса
func NewPage(r *http.Request, title string) views.Page {
	page := views.Page{Title: title}

	auth, ok := middleware.GetAuth(r.Context())
	if !ok || !auth.Snapshot.IsAuthenticated() {
		return page
	}

	page.Authenticated = true
	page.User = auth.Snapshot.User
	page.Admin = auth.Snapshot.HasRole(domain.RoleAdmin)
	page.Vendedor = auth.Snapshot.HasRole(domain.RoleVendedor)
	return page
}

// Token возвращает токен сессии запроса
func Token(r *http.Request) string {
	if auth, ok := middleware.GetAuth(r.Context()); ok {
		return auth.Snapshot.Token
	}
	return ""
}

// CurrentUserID возвращает ID вошедшего пользователя или 0
func CurrentUserID(r *http.Request) int64 {
	if auth, ok := middleware.GetAuth(r.Context()); ok && auth.Snapshot.User != nil {
		return auth.Snapshot.User.ID
	}
	return 0
}

// Redirect перенаправляет через 303, чтобы повтор POST не попадал в историю
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// SessionExpired очищает сессию, которую не принял API, и отправляет на вход
func SessionExpired(w http.ResponseWriter, r *http.Request, logger Logger) {
	if auth, ok := middleware.GetAuth(r.Context()); ok {
		if err := auth.Store.ClearSession(r.Context()); err != nil {
			logger.Error("%s %s - Failed to clear expired session: %v", r.Method, r.URL.Path, err)
		}
		auth.Reset()
	}
	logger.Info("%s %s - Session rejected by API, redirecting to login", r.Method, r.URL.Path)
	Redirect(w, r, domain.RouteLogin)
}

// NotFound рисует страницу 404
func NotFound(rd Renderer, w http.ResponseWriter, r *http.Request) {
	rd.Render(w, r, http.StatusNotFound, views.PageError, NewPage(r, MsgNotFound))
}

// PathID разбирает числовой параметр маршрута
func PathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrorPage рисует страницу ошибки с сообщением
func ErrorPage(rd Renderer, w http.ResponseWriter, r *http.Request, status int, message string) {
	page := NewPage(r, http.StatusText(status))
	page.Alert = message
	rd.Render(w, r, status, views.PageError, page)
}
