package cookiestorage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
)

// Options параметры cookie сессии
type Options struct {
	Name          string
	Secret        string
	EncryptionKey string // опционально, 16/24/32 байта для AES
	MaxAge        int    // секунды, 0 = до закрытия браузера
	Secure        bool
	Domain        string
}

// NewCookieStore создает gorilla/sessions хранилище с подписанными cookie
func NewCookieStore(opts Options) *sessions.CookieStore {
	keys := [][]byte{[]byte(opts.Secret)}
	if opts.EncryptionKey != "" {
		keys = append(keys, []byte(opts.EncryptionKey))
	}

	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Backend открывает cookie сессию запроса
type Backend struct {
	store sessions.Store
	name  string
}

// NewBackend создает backend поверх gorilla/sessions
func NewBackend(store sessions.Store, name string) *Backend {
	return &Backend{store: store, name: name}
}

// Open возвращает хранилище, привязанное к cookie запроса.
// Cookie, которую не удалось расшифровать, заменяется новой пустой сессией.
func (b *Backend) Open(w http.ResponseWriter, r *http.Request) (session.Storage, error) {
	sess, err := b.store.Get(r, b.name)
	if sess == nil {
		return nil, fmt.Errorf("%w: open cookie session: %v", ErrOpen, err)
	}
	return &Storage{sess: sess, r: r, w: w}, nil
}

// Storage значения сессии в cookie. Каждое изменение сразу записывается в ответ,
// поэтому менять сессию нужно до начала записи тела.
type Storage struct {
	sess *sessions.Session
	r    *http.Request
	w    http.ResponseWriter
}

// Get возвращает строковое значение ключа
func (s *Storage) Get(_ context.Context, key string) (string, bool, error) {
	raw, ok := s.sess.Values[key]
	if !ok {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: key %q has type %T", ErrValueType, key, raw)
	}
	return value, true, nil
}

// SetMany записывает значения и сохраняет cookie
func (s *Storage) SetMany(_ context.Context, values map[string]string) error {
	for key, value := range values {
		s.sess.Values[key] = value
	}
	return s.save()
}

// Delete удаляет ключи и сохраняет cookie
func (s *Storage) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.sess.Values, key)
	}
	return s.save()
}

func (s *Storage) save() error {
	if err := s.sess.Save(s.r, s.w); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}
