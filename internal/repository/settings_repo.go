package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"
)

// SettingsSQLite is a flat key-value store backed by the settings table.
type SettingsSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db, now: time.Now}
}

const (
	upsertSettingSQL = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectSettingSQL = `SELECT value FROM settings WHERE key = ?`

	deleteAllSettingsSQL = `DELETE FROM settings`
)

// Get returns the stored value and whether the key exists.
func (r *SettingsSQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, selectSettingSQL, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return v, true, nil
}

// Put writes a single key.
func (r *SettingsSQLite) Put(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertSettingSQL, key, value, r.now().UTC()); err != nil {
		return fmt.Errorf("put setting %q: %w", key, err)
	}
	return nil
}

// PutMany writes all values in one transaction, in key order.
func (r *SettingsSQLite) PutMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	ts := r.now().UTC()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertSettingSQL, k, values[k], ts); err != nil {
			return fmt.Errorf("put setting %q: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings transaction: %w", err)
	}
	return nil
}

// Clear removes every stored setting.
func (r *SettingsSQLite) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllSettingsSQL); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
