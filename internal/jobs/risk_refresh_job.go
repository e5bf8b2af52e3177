package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// RiskRefreshJob manages the scheduled recomputation of deadline risk scores.
// Runs every minute over active hub-manufactured orders, whose risk grows as
// the delivery deadline approaches.
type RiskRefreshJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRiskRefreshJob creates a new job for refreshing risk scores.
func NewRiskRefreshJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *RiskRefreshJob {
	return &RiskRefreshJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "risk_refresh_job"),
	}
}

// Start begins the risk refresh job to run every minute.
func (j *RiskRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Risk refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Risk refresh job started (running every minute)")
	return nil
}

// Stop stops the risk refresh job.
func (j *RiskRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Risk refresh job stopped")
}

// refresh recomputes and persists the risk score of every active
// hub-manufactured order in one transaction.
func (j *RiskRefreshJob) refresh(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllActiveOnTrack(ctx, order.TrackB)
	if err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	now := time.Now().UTC()
	for _, o := range orders {
		o.RefreshRiskScore(now)
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			_ = uow.Rollback(ctx)
			return err
		}
	}

	return uow.Commit(ctx)
}
