package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"aura_display/internal/models"
)

type fakeEventRepo struct {
	events []models.DisplayEvent
	err    error

	listCalls int
	from, to  time.Time
	typ       string

	appended     []models.DisplayEvent
	appendErr    error
	prunedBefore time.Time
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.DisplayEvent, error) {
	f.listCalls++
	f.from, f.to, f.typ = from, to, typ
	return f.events, f.err
}

func (f *fakeEventRepo) Append(_ context.Context, e models.DisplayEvent) error {
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) Prune(_ context.Context, before time.Time) (int64, error) {
	f.prunedBefore = before
	return 3, nil
}

func TestNormalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	plus2 := time.FixedZone("UTC+2", 2*3600)

	from, to, typ, err := normalizeAndValidateFilter(LogFilter{
		From: time.Date(2025, time.September, 10, 10, 0, 0, 0, plus2),
		To:   time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC),
		Type: " weather_refresh ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from.Location() != time.UTC || from.Hour() != 8 {
		t.Fatalf("from = %v", from)
	}
	if !to.Equal(time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v", to)
	}
	if typ != models.EventWeatherRefresh {
		t.Fatalf("type = %q", typ)
	}

	from, to, typ, err = normalizeAndValidateFilter(LogFilter{})
	if err != nil || !from.IsZero() || !to.IsZero() || typ != "" {
		t.Fatalf("zero filter: %v %v %q %v", from, to, typ, err)
	}

	_, _, _, err = normalizeAndValidateFilter(LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("err = %v, want errInvalidTimeRange", err)
	}
}

func TestEventLogService_List(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{events: []models.DisplayEvent{{EventID: "1", Type: models.EventWeatherFailed}}}
	svc := NewEventLogService(repo, nil)

	out, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, time.October, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)),
		Type: "weather_failed",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || repo.listCalls != 1 {
		t.Fatalf("out=%+v calls=%d", out, repo.listCalls)
	}
	if !repo.from.Equal(time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)) || !repo.to.IsZero() {
		t.Fatalf("bounds = %v..%v", repo.from, repo.to)
	}
	if repo.typ != models.EventWeatherFailed {
		t.Fatalf("type = %q", repo.typ)
	}
}

func TestEventLogService_List_Errors(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := NewEventLogService(repo, nil)
	_, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) || repo.listCalls != 0 {
		t.Fatalf("err=%v calls=%d", err, repo.listCalls)
	}

	repo.err = errors.New("db down")
	if _, err := svc.List(context.Background(), LogFilter{}); !errors.Is(err, repo.err) {
		t.Fatalf("repo error lost: %v", err)
	}
}

func TestEventLogService_Record(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{appendErr: errors.New("disk full")}
	svc := NewEventLogService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, time.May, 4, 22, 0, 0, 0, time.FixedZone("UTC+1", 3600)) }

	svc.Record(context.Background(), "night_mode", "dimmed", map[string]any{"hour": 22})
	svc.Record(context.Background(), models.EventReset, "reset", nil)

	if len(repo.appended) != 2 {
		t.Fatalf("appended = %d", len(repo.appended))
	}
	first := repo.appended[0]
	if first.Type != models.EventNightMode || first.OccurredAt.Location() != time.UTC || first.OccurredAt.Hour() != 21 {
		t.Fatalf("unexpected event: %+v", first)
	}
	if repo.appended[1].Metadata != nil {
		t.Fatalf("empty metadata should stay nil")
	}
}

func TestEventLogService_Prune(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := NewEventLogService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC) }

	n, err := svc.Prune(context.Background(), 30*24*time.Hour)
	if err != nil || n != 3 {
		t.Fatalf("Prune = %d, %v", n, err)
	}
	if want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC); !repo.prunedBefore.Equal(want) {
		t.Fatalf("prunedBefore = %v, want %v", repo.prunedBefore, want)
	}
	if n, _ := svc.Prune(context.Background(), 0); n != 0 {
		t.Fatalf("zero retention must not prune")
	}
}
