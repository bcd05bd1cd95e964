package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DoneCounter is the slice of the job repository the gate needs.
type DoneCounter interface {
	CountDoneSince(ctx context.Context, tenantID uuid.UUID, since time.Time) (int, error)
}

// Decision is the outcome of one quota check.
type Decision struct {
	Limited   bool
	UsedToday int
	MaxPerDay int
}

// Gate is the soft per-tenant daily cap. It is a read-then-decide check with
// no cross-request lock; concurrent invocations may transiently overshoot
// the cap by a render or two, which the product accepts.
type Gate struct {
	jobs   DoneCounter
	now    func() time.Time
	logger *slog.Logger
}

func NewGate(jobs DoneCounter, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{jobs: jobs, now: time.Now, logger: logger}
}

// Check counts completed renders in the current UTC day. maxPerDay <= 0
// means unlimited.
func (g *Gate) Check(ctx context.Context, tenantID uuid.UUID, maxPerDay int) (Decision, error) {
	if maxPerDay <= 0 {
		return Decision{Limited: false, MaxPerDay: maxPerDay}, nil
	}

	now := g.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	used, err := g.jobs.CountDoneSince(ctx, tenantID, midnight)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{
		Limited:   used >= maxPerDay,
		UsedToday: used,
		MaxPerDay: maxPerDay,
	}
	if d.Limited {
		g.logger.Info("render quota reached",
			"tenant_id", tenantID, "used_today", used, "max_per_day", maxPerDay)
	}
	return d, nil
}
