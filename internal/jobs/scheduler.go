package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/config"
)

// Scheduler runs the recurring maintenance jobs
type Scheduler struct {
	cron   *cron.Cron
	repos  *repositories.Repositories
	cfg    *config.Config
	logger zerolog.Logger
}

// NewScheduler creates a scheduler and registers all maintenance jobs
func NewScheduler(cfg *config.Config, repos *repositories.Repositories, lgr zerolog.Logger) *Scheduler {
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		repos:  repos,
		cfg:    cfg,
		logger: lgr.With().Str("component", "scheduler").Logger(),
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	if _, err := s.cron.AddFunc(s.cfg.Jobs.EventSweepSpec, s.sweepEventStatuses); err != nil {
		s.logger.Error().Err(err).Str("spec", s.cfg.Jobs.EventSweepSpec).Msg("Failed to register event sweep job")
	}

	if _, err := s.cron.AddFunc(s.cfg.Jobs.StartupSweepSpec, s.sweepStartupReapply); err != nil {
		s.logger.Error().Err(err).Str("spec", s.cfg.Jobs.StartupSweepSpec).Msg("Failed to register startup sweep job")
	}

	// Daily housekeeping shares one schedule
	if _, err := s.cron.AddFunc("30 3 * * *", s.pruneNotifications); err != nil {
		s.logger.Error().Err(err).Msg("Failed to register notification prune job")
	}
	if _, err := s.cron.AddFunc("45 3 * * *", s.deleteExpiredTokens); err != nil {
		s.logger.Error().Err(err).Msg("Failed to register token cleanup job")
	}
}

// Start begins running the registered jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("Background job scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Background job scheduler stopped")
}

// sweepEventStatuses advances event lifecycle statuses past their time bounds
func (s *Scheduler) sweepEventStatuses() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	changed, err := s.repos.EventRepository.SweepStatuses(ctx, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Msg("Event status sweep failed")
		return
	}
	if changed > 0 {
		s.logger.Info().Int64("changed", changed).Msg("Event statuses advanced")
	}
}

// sweepStartupReapply clears rejection cool-downs that have elapsed
func (s *Scheduler) sweepStartupReapply() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleared, err := s.repos.StartupRepository.ClearExpiredReapply(ctx, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Msg("Startup reapply sweep failed")
		return
	}
	if cleared > 0 {
		s.logger.Info().Int64("cleared", cleared).Msg("Startup reapply windows cleared")
	}
}

// pruneNotifications removes read notifications past the retention window
func (s *Scheduler) pruneNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	retention := time.Duration(s.cfg.Jobs.NotificationRetentionDays) * 24 * time.Hour
	pruned, err := s.repos.NotificationRepository.PruneRead(ctx, time.Now().Add(-retention))
	if err != nil {
		s.logger.Error().Err(err).Msg("Notification prune failed")
		return
	}
	if pruned > 0 {
		s.logger.Info().Int64("pruned", pruned).Msg("Read notifications pruned")
	}
}

// deleteExpiredTokens removes refresh tokens past their expiry
func (s *Scheduler) deleteExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.repos.TokenRepository.DeleteExpiredTokens(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Expired token cleanup failed")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("Expired refresh tokens deleted")
	}
}
