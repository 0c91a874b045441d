package repository

import (
	"context"
	"strconv"
)

// Prefs adds typed accessors on top of a SettingsRepo. Getters return def
// when the key is missing; a stored value that does not parse is an error.
type Prefs struct {
	repo SettingsRepo
}

func NewPrefs(repo SettingsRepo) Prefs { return Prefs{repo: repo} }

func (p Prefs) GetString(ctx context.Context, key, def string) (string, error) {
	v, ok, err := p.repo.Get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

func (p Prefs) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	v, ok, err := p.repo.Get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, err
	}
	return b, nil
}

func (p Prefs) GetUint(ctx context.Context, key string, def uint64) (uint64, error) {
	v, ok, err := p.repo.Get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return def, err
	}
	return n, nil
}

func (p Prefs) PutString(ctx context.Context, key, value string) error {
	return p.repo.Put(ctx, key, value)
}

func (p Prefs) PutBool(ctx context.Context, key string, value bool) error {
	return p.repo.Put(ctx, key, strconv.FormatBool(value))
}

func (p Prefs) PutUint(ctx context.Context, key string, value uint64) error {
	return p.repo.Put(ctx, key, strconv.FormatUint(value, 10))
}
