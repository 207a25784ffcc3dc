package session

import (
	"context"
	"net/http"
	"sync"
)

// MemoryStorage хранилище в памяти процесса
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage создает пустое хранилище
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get возвращает значение ключа
func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// SetMany записывает значения под одной блокировкой
func (m *MemoryStorage) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, value := range values {
		m.values[key] = value
	}
	return nil
}

// Delete удаляет ключи
func (m *MemoryStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

// MemoryBackend отдаёт одно и то же хранилище на любой запрос.
// Подходит для тестов и локального запуска с одним пользователем.
type MemoryBackend struct {
	Storage *MemoryStorage
}

// NewMemoryBackend создает backend с пустым хранилищем
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{Storage: NewMemoryStorage()}
}

// Open возвращает общее хранилище
func (b *MemoryBackend) Open(_ http.ResponseWriter, _ *http.Request) (Storage, error) {
	return b.Storage, nil
}
