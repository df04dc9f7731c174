package jobs

import (
	"context"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/realtime"
	"github.com/vinodbargaje/happy-paws-connect/internal/usecase"
	"github.com/vinodbargaje/happy-paws-connect/pkg/metrics"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper runs the periodic maintenance passes: cancelling pending requests
// whose window has fully passed, refreshing the in-service gauge and pruning
// expired sessions.
type Sweeper struct {
	repo      *repository.Repository
	publisher usecase.ChangePublisher
	log       *zap.Logger
	cron      *cron.Cron
}

func NewSweeper(repo *repository.Repository, publisher usecase.ChangePublisher, log *zap.Logger) *Sweeper {
	return &Sweeper{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("component", "sweeper")),
		cron:      cron.New(),
	}
}

// Start registers the sweep on the given cron schedule and starts the
// scheduler. One pass runs immediately so a restart never leaves stale rows
// waiting for the first tick.
func (s *Sweeper) Start(ctx context.Context, schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep(ctx) }); err != nil {
		return err
	}

	s.cron.Start()
	go s.Sweep(ctx)

	s.log.Info("Sweeper started", zap.String("schedule", schedule))
	return nil
}

func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Sweeper stopped")
}

// Sweep runs one maintenance pass. Each step is independent; a failing step
// logs and the others still run.
func (s *Sweeper) Sweep(ctx context.Context) {
	expired, err := s.repo.Booking.ExpireStalePending(ctx)
	if err != nil {
		s.log.Error("Failed to expire stale pending bookings", zap.Error(err))
	} else if expired > 0 {
		s.log.Info("Expired stale pending bookings", zap.Int64("count", expired))
		// a single table-wide signal is enough, subscribers re-fetch
		s.publisher.Publish(ctx, realtime.OpUpdate, uuid.Nil)
	}

	inService, err := s.repo.Booking.CountInServiceWindow(ctx)
	if err != nil {
		s.log.Error("Failed to count in-service bookings", zap.Error(err))
	} else {
		metrics.SetInServiceWindow(float64(inService))
	}

	cleaned, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		s.log.Error("Failed to clean expired sessions", zap.Error(err))
	} else if cleaned > 0 {
		s.log.Info("Cleaned expired sessions", zap.Int64("count", cleaned))
	}
}
