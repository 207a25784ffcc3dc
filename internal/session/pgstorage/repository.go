package pgstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarMarketWeb/pkg/psqlbuilder"
)

const tableName = "web_sessions"

// Repository репозиторий значений сессий.
//
// Схема:
//
//	CREATE TABLE web_sessions (
//	    sid        UUID        NOT NULL,
//	    key        TEXT        NOT NULL,
//	    value      TEXT        NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (sid, key)
//	);
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает значение ключа сессии
func (r *Repository) Get(ctx context.Context, sid, key string) (string, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.And{
			squirrel.Eq{"sid": sid},
			squirrel.Eq{"key": key},
		}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, true, nil
}

// Upsert записывает все значения одним INSERT ... ON CONFLICT.
// Один оператор выполняется атомарно, отдельная транзакция не нужна.
func (r *Repository) Upsert(ctx context.Context, sid string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	builder := psqlbuilder.Insert(tableName).
		Columns("sid", "key", "value", "updated_at")
	for _, key := range keys {
		builder = builder.Values(sid, key, values[key], squirrel.Expr("NOW()"))
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (sid, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Touch отмечает активность сессии, чтобы ее не удалила очистка
func (r *Repository) Touch(ctx context.Context, sid string) error {
	query, args, err := psqlbuilder.Update(tableName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"sid": sid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Touch - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Touch - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteKeys удаляет ключи сессии
func (r *Repository) DeleteKeys(ctx context.Context, sid string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.And{
			squirrel.Eq{"sid": sid},
			squirrel.Eq{"key": keys},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteKeys - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteKeys - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteIdle удаляет сессии, не обновлявшиеся с момента before
func (r *Repository) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdle - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdle - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdle - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}
