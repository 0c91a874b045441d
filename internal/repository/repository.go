package repository

import (
	"context"
	"database/sql"
	"time"

	"aura_display/internal/models"
)

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	PutMany(ctx context.Context, values map[string]string) error
	Clear(ctx context.Context) error
}

type EventRepo interface {
	Append(ctx context.Context, e models.DisplayEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.DisplayEvent, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type Repository struct {
	SettingsRepo SettingsRepo
	EventRepo    EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SettingsRepo: NewSettingsSQLite(db),
		EventRepo:    NewEventSQLite(db),
	}
}
