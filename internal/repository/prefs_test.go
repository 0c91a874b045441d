package repository

import (
	"context"
	"testing"
)

type memSettings map[string]string

func (m memSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memSettings) Put(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memSettings) PutMany(_ context.Context, values map[string]string) error {
	for k, v := range values {
		m[k] = v
	}
	return nil
}

func (m memSettings) Clear(context.Context) error {
	for k := range m {
		delete(m, k)
	}
	return nil
}

func TestPrefs_RoundTrip(t *testing.T) {
	t.Parallel()

	store := memSettings{}
	p := NewPrefs(store)
	c := context.Background()

	if err := p.PutBool(c, "useNightMode", true); err != nil {
		t.Fatalf("PutBool: %v", err)
	}
	if err := p.PutUint(c, "autoRotateInt", 15000); err != nil {
		t.Fatalf("PutUint: %v", err)
	}
	if err := p.PutString(c, "location", "Berlin"); err != nil {
		t.Fatalf("PutString: %v", err)
	}

	if b, err := p.GetBool(c, "useNightMode", false); err != nil || !b {
		t.Fatalf("GetBool = %v, %v", b, err)
	}
	if n, err := p.GetUint(c, "autoRotateInt", 10000); err != nil || n != 15000 {
		t.Fatalf("GetUint = %v, %v", n, err)
	}
	if s, err := p.GetString(c, "location", "London"); err != nil || s != "Berlin" {
		t.Fatalf("GetString = %v, %v", s, err)
	}
}

func TestPrefs_DefaultsAndParseErrors(t *testing.T) {
	t.Parallel()

	p := NewPrefs(memSettings{"brightness": "bright"})
	c := context.Background()

	if s, err := p.GetString(c, "latitude", "51.5074"); err != nil || s != "51.5074" {
		t.Fatalf("missing string = %v, %v", s, err)
	}
	if n, err := p.GetUint(c, "brightness", 128); err == nil || n != 128 {
		t.Fatalf("bad uint = %v, %v", n, err)
	}
	if b, err := p.GetBool(c, "use24Hour", true); err != nil || !b {
		t.Fatalf("missing bool = %v, %v", b, err)
	}
}
