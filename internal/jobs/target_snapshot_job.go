package jobs

import (
	"context"
	"time"

	"github.com/kardex/offerfunnel-api/internal/repository"
	"go.uber.org/zap"
)

// TargetSnapshotJob logs the achievement of every target in the current
// month. Actuals are computed at read time and never stored, so the nightly
// log line is the only historical record of how targets tracked over time.
type TargetSnapshotJob struct {
	targetRepo *repository.TargetRepository
	offerRepo  *repository.OfferRepository
	logger     *zap.Logger
}

func NewTargetSnapshotJob(
	targetRepo *repository.TargetRepository,
	offerRepo *repository.OfferRepository,
	logger *zap.Logger,
) *TargetSnapshotJob {
	return &TargetSnapshotJob{
		targetRepo: targetRepo,
		offerRepo:  offerRepo,
		logger:     logger,
	}
}

// Name returns the job name for scheduler registration
func (j *TargetSnapshotJob) Name() string {
	return "target_snapshot"
}

// Run snapshots the current month's targets
func (j *TargetSnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	period := time.Now().UTC().Format("2006-01")
	targets, err := j.targetRepo.ListForPeriod(ctx, period)
	if err != nil {
		j.logger.Error("failed to load targets for snapshot",
			zap.String("period", period),
			zap.Error(err))
		return
	}

	for i := range targets {
		target := &targets[i]
		actualValue, actualCount, err := j.offerRepo.TargetActuals(ctx, target)
		if err != nil {
			j.logger.Error("failed to compute target actuals",
				zap.String("target_id", target.ID.String()),
				zap.Error(err))
			continue
		}

		achievedPct := 0.0
		if target.TargetValue > 0 {
			achievedPct = actualValue / target.TargetValue * 100
		}

		j.logger.Info("target snapshot",
			zap.String("target_id", target.ID.String()),
			zap.String("period", target.Period),
			zap.Float64("target_value", target.TargetValue),
			zap.Float64("actual_value", actualValue),
			zap.Int("actual_count", actualCount),
			zap.Float64("achieved_pct", achievedPct),
		)
	}

	j.logger.Info("target snapshot complete",
		zap.String("period", period),
		zap.Int("targets", len(targets)),
	)
}
