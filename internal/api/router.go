package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	adminCochesHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/admin_coches"
	deleteCocheHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/delete_coche"
	editCocheHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/edit_coche"
	getCocheHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/get_coche"
	listCochesHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/list_coches"
	listModelosHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/list_modelos"
	loginHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/logout"
	manageMediaHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/manage_media"
	profileHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/profile"
	publishCocheHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/publish_coche"
	registerHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/register"
	sellerCochesHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/seller_coches"
	verifyCocheHandler "github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers/verify_coche"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
)

// Handlers все обработчики страниц
type Handlers struct {
	ListCoches   *listCochesHandler.Handler
	GetCoche     *getCocheHandler.Handler
	Login        *loginHandler.Handler
	Register     *registerHandler.Handler
	Logout       *logoutHandler.Handler
	ListModelos  *listModelosHandler.Handler
	Profile      *profileHandler.Handler
	PublishCoche *publishCocheHandler.Handler
	SellerCoches *sellerCochesHandler.Handler
	EditCoche    *editCocheHandler.Handler
	DeleteCoche  *deleteCocheHandler.Handler
	ManageMedia  *manageMediaHandler.Handler
	AdminCoches  *adminCochesHandler.Handler
	VerifyCoche  *verifyCocheHandler.Handler
}

// Options инфраструктура роутера
type Options struct {
	Sessions session.Backend
	Guard    *middleware.Guard
	Renderer handlers.Renderer
	Logger   middleware.Logger

	// Metrics nil отключает HTTP метрики
	Metrics     middleware.Metrics
	MetricsPath string
	// MetricsHandler отдает метрики Prometheus на MetricsPath
	MetricsHandler http.Handler

	// CORSOrigins origins, которым разрешен /api (выбор моделей из внешнего фронта)
	CORSOrigins []string
}

// NewRouter собирает маршруты приложения
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.TraceID, middleware.AccessLog(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	// Metrics endpoint (без сессии)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.NotFound(opts.Renderer, w, req)
	})

	// ============================================================
	// JSON API для формы объявления
	// ============================================================

	api := r.PathPrefix("/api").Subrouter()
	api.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	api.HandleFunc("/marcas/{id}/modelos", h.ListModelos.Handle).Methods(http.MethodGet, http.MethodOptions)

	// ============================================================
	// HTML страницы (сессия разрешается один раз на запрос)
	// ============================================================

	pages := r.PathPrefix("").Subrouter()
	pages.Use(middleware.Session(opts.Sessions, opts.Logger))

	// --- Публичные ---
	pages.HandleFunc("/", h.ListCoches.Handle).Methods(http.MethodGet)
	pages.HandleFunc("/coche/{id:[0-9]+}", h.GetCoche.Handle).Methods(http.MethodGet)
	pages.HandleFunc("/login", h.Login.Show).Methods(http.MethodGet)
	pages.HandleFunc("/login", h.Login.Handle).Methods(http.MethodPost)
	pages.HandleFunc("/register", h.Register.Show).Methods(http.MethodGet)
	pages.HandleFunc("/register", h.Register.Handle).Methods(http.MethodPost)
	pages.HandleFunc("/logout", h.Logout.Handle).Methods(http.MethodPost)

	// --- Администратор ---
	admin := pages.PathPrefix("/admin").Subrouter()
	admin.Use(opts.Guard.RequireAdmin)
	admin.HandleFunc("/coches", h.AdminCoches.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/coches/{id:[0-9]+}/verificar", h.VerifyCoche.Handle).Methods(http.MethodPost)

	// --- Вошедший пользователь ---
	protected := pages.PathPrefix("").Subrouter()
	protected.Use(opts.Guard.RequireAuth)

	protected.HandleFunc("/profile", h.Profile.Show).Methods(http.MethodGet)
	protected.HandleFunc("/profile", h.Profile.Update).Methods(http.MethodPost)
	protected.HandleFunc("/profile/password", h.Profile.ChangePassword).Methods(http.MethodPost)

	protected.HandleFunc("/vendedor/publicar", h.PublishCoche.Show).Methods(http.MethodGet)
	protected.HandleFunc("/vendedor/publicar", h.PublishCoche.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vendedor/coches", h.SellerCoches.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/editar", h.EditCoche.Show).Methods(http.MethodGet)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/editar", h.EditCoche.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/eliminar", h.DeleteCoche.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/imagenes", h.ManageMedia.AddImages).Methods(http.MethodPost)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/imagenes/{mediaID:[0-9]+}/eliminar", h.ManageMedia.DeleteImage).Methods(http.MethodPost)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/documentos", h.ManageMedia.AddDocuments).Methods(http.MethodPost)
	protected.HandleFunc("/vendedor/coches/{id:[0-9]+}/documentos/{mediaID:[0-9]+}/eliminar", h.ManageMedia.DeleteDocument).Methods(http.MethodPost)

	return r
}
