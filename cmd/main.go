package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api"
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
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/config"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	authService "github.com/m04kA/SMC-CarMarketWeb/internal/service/auth"
	cochesService "github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
	profileService "github.com/m04kA/SMC-CarMarketWeb/internal/service/profile"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session/cookiestorage"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session/pgstorage"
	publishCocheUC "github.com/m04kA/SMC-CarMarketWeb/internal/usecase/publish_coche"
	"github.com/m04kA/SMC-CarMarketWeb/pkg/logger"
	"github.com/m04kA/SMC-CarMarketWeb/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	var logOpts []logger.Option
	if cfg.Logs.Fluent.Enabled {
		logOpts = append(logOpts, logger.WithFluent(logger.FluentConfig{
			Host: cfg.Logs.Fluent.Host,
			Port: cfg.Logs.Fluent.Port,
			Tag:  cfg.Metrics.ServiceName,
		}))
	}
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logOpts...)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarMarketWeb (environment=%s)...", cfg.Environment)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Шаблоны страниц
	renderer, err := views.New(log)
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	// Клиент REST API
	var apiMetrics marketapi.Metrics
	if metricsCollector != nil {
		apiMetrics = metricsCollector
	}
	marketClient := marketapi.NewClient(
		cfg.APIBaseURL(),
		time.Duration(cfg.MarketAPI.Timeout)*time.Second,
		log,
		apiMetrics,
	)
	log.Info("Market API client initialized (url=%s, timeout=%ds)", cfg.APIBaseURL(), cfg.MarketAPI.Timeout)

	// Хранилище сессий
	stopCleanupCh := make(chan struct{})
	sessions, closeSessions, err := newSessionBackend(cfg, log, stopCleanupCh)
	if err != nil {
		log.Fatal("Failed to initialize session storage: %v", err)
	}
	defer closeSessions()
	log.Info("Session storage initialized (backend=%s, revalidate=%t)", cfg.Session.Backend, cfg.Session.Revalidate)

	// Инициализируем сервисы
	authSvc := authService.NewService(marketClient, log)
	cochesSvc := cochesService.NewService(marketClient, log)
	profileSvc := profileService.NewService(marketClient, log)

	// Инициализируем use cases
	publishCocheUseCase := publishCocheUC.NewUseCase(marketClient, log)

	// Guard: с revalidate токен проверяется через API на каждой защищенной странице
	var validator middleware.UserValidator
	if cfg.Session.Revalidate {
		validator = marketClient
	}
	var guardMetrics middleware.Metrics
	if metricsCollector != nil {
		guardMetrics = metricsCollector
	}
	guard := middleware.NewGuard(validator, guardMetrics, log, renderer.Loading())

	// Инициализируем handlers
	handlers := api.Handlers{
		ListCoches:   listCochesHandler.NewHandler(cochesSvc, renderer, log),
		GetCoche:     getCocheHandler.NewHandler(cochesSvc, renderer, log),
		Login:        loginHandler.NewHandler(authSvc, renderer, log),
		Register:     registerHandler.NewHandler(authSvc, renderer, log),
		Logout:       logoutHandler.NewHandler(authSvc, log),
		ListModelos:  listModelosHandler.NewHandler(cochesSvc, log),
		Profile:      profileHandler.NewHandler(profileSvc, renderer, log),
		PublishCoche: publishCocheHandler.NewHandler(publishCocheUseCase, cochesSvc, renderer, log),
		SellerCoches: sellerCochesHandler.NewHandler(cochesSvc, renderer, log),
		EditCoche:    editCocheHandler.NewHandler(cochesSvc, renderer, log),
		DeleteCoche:  deleteCocheHandler.NewHandler(cochesSvc, renderer, log),
		ManageMedia:  manageMediaHandler.NewHandler(cochesSvc, renderer, log),
		AdminCoches:  adminCochesHandler.NewHandler(cochesSvc, renderer, log),
		VerifyCoche:  verifyCocheHandler.NewHandler(cochesSvc, renderer, log),
	}

	// Настраиваем роутер
	opts := api.Options{
		Sessions:    sessions,
		Guard:       guard,
		Renderer:    renderer,
		Logger:      log,
		CORSOrigins: cfg.CORS.AllowedOrigins,
	}
	if metricsCollector != nil {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	var handler http.Handler = api.NewRouter(handlers, opts)

	// CSRF защита всех POST форм
	if cfg.CSRF.Enabled {
		handler = csrf.Protect(
			[]byte(cfg.CSRF.AuthKey),
			csrf.Secure(cfg.CSRF.Secure),
			csrf.Path("/"),
			csrf.TrustedOrigins(cfg.CSRF.TrustedOrigins),
			csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log.Warn("%s %s - CSRF check failed: %v", r.Method, r.URL.Path, csrf.FailureReason(r))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			})),
		)(handler)
		log.Info("CSRF protection enabled")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем очистку сессий
	close(stopCleanupCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// newSessionBackend создает хранилище сессий по конфигурации.
// Для postgres запускает фоновую очистку неактивных сессий до закрытия stop.
func newSessionBackend(cfg *config.Config, log *logger.Logger, stop <-chan struct{}) (session.Backend, func(), error) {
	cookies := cookiestorage.NewCookieStore(cookiestorage.Options{
		Name:          cfg.Session.CookieName,
		Secret:        cfg.Session.Secret,
		EncryptionKey: cfg.Session.EncryptionKey,
		MaxAge:        cfg.Session.MaxAge,
		Secure:        cfg.Session.Secure,
	})

	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		log.Warn("Memory session storage is shared by all visitors, use it only for local development")
		return session.NewMemoryBackend(), func() {}, nil

	case config.SessionBackendPostgres:
		// Подключаемся к базе данных
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		backend := pgstorage.NewBackend(pgstorage.NewRepository(db), cookies, cfg.Session.CookieName, log)
		go backend.RunCleanup(
			time.Duration(cfg.Session.CleanupInterval)*time.Second,
			time.Duration(cfg.Session.IdleTTL)*time.Second,
			stop,
		)
		return backend, func() { _ = db.Close() }, nil

	default:
		return cookiestorage.NewBackend(cookies, cfg.Session.CookieName), func() {}, nil
	}
}
