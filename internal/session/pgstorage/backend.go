package pgstorage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
)

const sidKey = "sid"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Backend хранит данные сессии в PostgreSQL, а в cookie только идентификатор сессии
type Backend struct {
	repo    *Repository
	cookies sessions.Store
	name    string
	logger  Logger
}

// NewBackend создает backend
func NewBackend(repo *Repository, cookies sessions.Store, name string, logger Logger) *Backend {
	return &Backend{
		repo:    repo,
		cookies: cookies,
		name:    name,
		logger:  logger,
	}
}

// Open находит идентификатор сессии в cookie или выдаёт новый.
// Cookie с новым идентификатором записывается только при первой записи в сессию.
// Для существующей сессии обновляет updated_at, очистка считает простой от последнего запроса.
func (b *Backend) Open(w http.ResponseWriter, r *http.Request) (session.Storage, error) {
	cookie, err := b.cookies.Get(r, b.name)
	if cookie == nil {
		return nil, fmt.Errorf("%w: Open: %v", ErrCookie, err)
	}

	sid, ok := cookie.Values[sidKey].(string)
	if ok {
		if _, err := uuid.Parse(sid); err != nil {
			ok = false
		}
	}

	storage := &Storage{
		repo:   b.repo,
		sid:    sid,
		cookie: cookie,
		r:      r,
		w:      w,
	}
	if !ok {
		storage.sid = uuid.NewString()
		storage.isNew = true
		return storage, nil
	}

	// Ошибка отметки не мешает прочитать сессию
	if err := b.repo.Touch(r.Context(), sid); err != nil {
		b.logger.Warn("Open: failed to touch session: %v", err)
	}

	return storage, nil
}

// Cleanup удаляет сессии, простаивающие дольше ttl
func (b *Backend) Cleanup(ctx context.Context, ttl time.Duration) {
	deleted, err := b.repo.DeleteIdle(ctx, time.Now().Add(-ttl))
	if err != nil {
		b.logger.Error("Cleanup: failed to delete idle sessions: %v", err)
		return
	}
	if deleted > 0 {
		b.logger.Info("Cleanup: deleted %d idle session rows", deleted)
	}
}

// RunCleanup периодически вызывает Cleanup, пока не закрыт stop
func (b *Backend) RunCleanup(interval, ttl time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			b.Cleanup(ctx, ttl)
			cancel()
		}
	}
}

// Storage значения одной серверной сессии
type Storage struct {
	repo   *Repository
	sid    string
	isNew  bool
	cookie *sessions.Session
	r      *http.Request
	w      http.ResponseWriter
}

// SID возвращает идентификатор сессии
func (s *Storage) SID() string {
	return s.sid
}

// Get читает значение ключа
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if s.isNew {
		return "", false, nil
	}
	return s.repo.Get(ctx, s.sid, key)
}

// SetMany записывает значения и при необходимости выставляет cookie с идентификатором
func (s *Storage) SetMany(ctx context.Context, values map[string]string) error {
	if s.isNew {
		s.cookie.Values[sidKey] = s.sid
		if err := s.cookie.Save(s.r, s.w); err != nil {
			return fmt.Errorf("%w: SetMany - save cookie: %v", ErrCookie, err)
		}
		s.isNew = false
	}
	return s.repo.Upsert(ctx, s.sid, values)
}

// Delete удаляет ключи
func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if s.isNew {
		return nil
	}
	return s.repo.DeleteKeys(ctx, s.sid, keys...)
}
