package event

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/pkg/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	publishedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outbox_events_published_total",
		Help: "Total number of outbox events published to the bus",
	})
	failedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outbox_events_failed_total",
		Help: "Total number of outbox events that exhausted their attempts",
	})
)

// Dispatcher polls the outbox table and publishes pending events to the bus.
// Rows that fail are retried on the next tick until MaxAttempts, then marked
// failed and logged.
type Dispatcher struct {
	db          *gorm.DB
	publisher   Publisher
	log         *zap.Logger
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

// NewDispatcher creates a dispatcher from the outbox configuration.
func NewDispatcher(db *gorm.DB, publisher Publisher, log *zap.Logger, cfg *config.OutboxConfig) *Dispatcher {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 50
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	return &Dispatcher{
		db:          db,
		publisher:   publisher,
		log:         log,
		interval:    interval,
		batchSize:   batch,
		maxAttempts: attempts,
	}
}

// Start runs the poll loop until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.DispatchOnce(ctx); err != nil {
				d.log.Error("outbox dispatch pass failed", zap.Error(err))
			}
		}
	}
}

// DispatchOnce publishes one batch of pending events. Exported so tests and
// shutdown paths can drain the outbox synchronously.
func (d *Dispatcher) DispatchOnce(ctx context.Context) error {
	var rows []model.OutboxEvent
	err := d.db.WithContext(ctx).
		Where("status = ?", model.OutboxPending).
		Order("created_at").
		Limit(d.batchSize).
		Find(&rows).Error
	if err != nil {
		return err
	}

	for i := range rows {
		d.dispatchRow(ctx, &rows[i])
	}
	return nil
}

func (d *Dispatcher) dispatchRow(ctx context.Context, row *model.OutboxEvent) {
	err := d.publisher.Publish(ctx, row.Topic, []byte(row.Payload))
	if err == nil {
		now := time.Now()
		row.Status = model.OutboxPublished
		row.PublishedAt = &now
		row.Attempts++
		row.LastError = ""
		if saveErr := d.db.WithContext(ctx).Save(row).Error; saveErr != nil {
			d.log.Error("failed to mark outbox event published",
				zap.String("event_id", row.ID.String()),
				zap.Error(saveErr))
		}
		publishedCounter.Inc()
		return
	}

	row.Attempts++
	row.LastError = err.Error()
	if row.Attempts >= d.maxAttempts {
		row.Status = model.OutboxFailed
		failedCounter.Inc()
		d.log.Error("outbox event exhausted attempts",
			zap.String("event_id", row.ID.String()),
			zap.String("topic", row.Topic),
			zap.Int("attempts", row.Attempts),
			zap.Error(err))
	} else {
		d.log.Warn("outbox publish failed, will retry",
			zap.String("event_id", row.ID.String()),
			zap.String("topic", row.Topic),
			zap.Int("attempts", row.Attempts),
			zap.Error(err))
	}

	if saveErr := d.db.WithContext(ctx).Save(row).Error; saveErr != nil {
		d.log.Error("failed to record outbox attempt",
			zap.String("event_id", row.ID.String()),
			zap.Error(saveErr))
	}
}
