package scheduler

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/config"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/email"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ExpirySweeper runs the daily contract expiry sweep: vehicles whose contract
// ends inside the configured window are collected into one notification email.
type ExpirySweeper struct {
	vehicleRepo repository.VehicleRepository
	idemRepo    repository.IdempotencyRepository
	mailer      *email.Service
	cfg         config.SchedulerConfig
	log         *logrus.Logger
	cron        *cron.Cron
}

// NewExpirySweeper creates a new expiry sweeper
func NewExpirySweeper(
	vehicleRepo repository.VehicleRepository,
	idemRepo repository.IdempotencyRepository,
	mailer *email.Service,
	cfg config.SchedulerConfig,
	log *logrus.Logger,
) *ExpirySweeper {
	return &ExpirySweeper{
		vehicleRepo: vehicleRepo,
		idemRepo:    idemRepo,
		mailer:      mailer,
		cfg:         cfg,
		log:         log,
		cron:        cron.New(),
	}
}

// Start registers the cron entries and starts the scheduler
func (s *ExpirySweeper) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.ExpirySpec, s.Sweep); err != nil {
		return err
	}
	// Expired idempotency keys are purged hourly
	if _, err := s.cron.AddFunc("@hourly", s.purgeIdempotencyKeys); err != nil {
		return err
	}
	s.cron.Start()
	s.log.WithField("spec", s.cfg.ExpirySpec).Info("expiry sweeper started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *ExpirySweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep finds vehicles expiring inside the window and sends the notice
func (s *ExpirySweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	vehicles, err := s.vehicleRepo.ExpiringBefore(ctx, s.cfg.ExpiryWindowDays)
	if err != nil {
		s.log.WithError(err).Error("expiry sweep query failed")
		return
	}
	if len(vehicles) == 0 {
		s.log.Debug("expiry sweep found no expiring contracts")
		return
	}

	s.log.WithField("count", len(vehicles)).Info("expiry sweep found expiring contracts")

	if !s.mailer.Enabled() {
		return
	}
	if err := s.mailer.SendContractExpiryNotice(vehicles, s.cfg.ExpiryWindowDays); err != nil {
		s.log.WithError(err).Error("failed to send contract expiry notice")
	}
}

func (s *ExpirySweeper) purgeIdempotencyKeys() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.idemRepo.DeleteExpired(ctx); err != nil {
		s.log.WithError(err).Error("failed to purge expired idempotency keys")
	}
}
