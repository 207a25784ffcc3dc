package session

import (
	"context"
	"net/http"
)

// Ключи, под которыми сессия лежит в хранилище
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyRoles = "roles"
)

// Keys все ключи сессии
var Keys = []string{KeyToken, KeyUser, KeyRoles}

// Storage интерфейс персистентного key-value хранилища сессии
type Storage interface {
	// Get возвращает значение ключа и признак его наличия
	Get(ctx context.Context, key string) (string, bool, error)
	// SetMany записывает все значения одной операцией
	SetMany(ctx context.Context, values map[string]string) error
	// Delete удаляет ключи, отсутствующие ключи игнорируются
	Delete(ctx context.Context, keys ...string) error
}

// Backend открывает хранилище сессии, привязанное к конкретному HTTP запросу
type Backend interface {
	Open(w http.ResponseWriter, r *http.Request) (Storage, error)
}
