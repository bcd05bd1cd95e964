package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubCounter struct {
	count int
	err   error
	calls int
	since time.Time
}

func (s *stubCounter) CountDoneSince(_ context.Context, _ uuid.UUID, since time.Time) (int, error) {
	s.calls++
	s.since = since
	return s.count, s.err
}

func TestCheckUnlimitedSkipsCount(t *testing.T) {
	counter := &stubCounter{count: 99}
	gate := NewGate(counter, nil)

	d, err := gate.Check(context.Background(), uuid.New(), 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if d.Limited {
		t.Error("maxPerDay=0 must be unlimited")
	}
	if counter.calls != 0 {
		t.Errorf("counter called %d times, want 0", counter.calls)
	}
}

func TestCheckUnderCap(t *testing.T) {
	gate := NewGate(&stubCounter{count: 2}, nil)
	d, err := gate.Check(context.Background(), uuid.New(), 3)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if d.Limited {
		t.Error("2 of 3 used must pass")
	}
	if d.UsedToday != 2 || d.MaxPerDay != 3 {
		t.Errorf("decision = %+v", d)
	}
}

func TestCheckAtCap(t *testing.T) {
	gate := NewGate(&stubCounter{count: 3}, nil)
	d, err := gate.Check(context.Background(), uuid.New(), 3)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !d.Limited {
		t.Error("3 of 3 used must be limited")
	}
}

func TestCheckCountsFromUTCMidnight(t *testing.T) {
	counter := &stubCounter{}
	gate := NewGate(counter, nil)
	// 01:30 UTC on the 2nd; the window must start at 00:00 the same day,
	// not 24h ago
	gate.now = func() time.Time {
		return time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)
	}

	if _, err := gate.Check(context.Background(), uuid.New(), 5); err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !counter.since.Equal(want) {
		t.Errorf("since = %v, want %v", counter.since, want)
	}
}

func TestCheckPropagatesCounterError(t *testing.T) {
	boom := errors.New("db down")
	gate := NewGate(&stubCounter{err: boom}, nil)
	if _, err := gate.Check(context.Background(), uuid.New(), 3); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
