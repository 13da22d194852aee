package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/testutil"
	"github.com/ssengur01/TalentFlows/pkg/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubPublisher struct {
	published []string
	failures  int
}

func (p *stubPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	if p.failures > 0 {
		p.failures--
		return errors.New("bus unavailable")
	}
	p.published = append(p.published, string(payload))
	return nil
}

func newTestDispatcher(t *testing.T, pub Publisher, maxAttempts int) (*Dispatcher, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &model.OutboxEvent{})
	cfg := &config.OutboxConfig{
		Stream:       "talentflows.applications",
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  maxAttempts,
	}
	return NewDispatcher(db, pub, zap.NewNop(), cfg), db
}

func stageApplicationCreated(t *testing.T, db *gorm.DB) ApplicationCreated {
	t.Helper()
	evt := ApplicationCreated{
		ApplicationID:  uuid.New(),
		JobID:          uuid.New(),
		CandidateID:    uuid.New(),
		TenantID:       uuid.New(),
		CandidateName:  "Jane Doe",
		CandidateEmail: "jane@example.com",
		AppliedAt:      time.Now().UTC(),
	}
	if err := StageTx(db, "talentflows.applications", evt); err != nil {
		t.Fatalf("stage event: %v", err)
	}
	return evt
}

func TestDispatcher_PublishesPendingEvents(t *testing.T) {
	pub := &stubPublisher{}
	d, db := newTestDispatcher(t, pub, 5)

	evt := stageApplicationCreated(t, db)

	if err := d.DispatchOnce(context.Background()); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.published))
	}

	var decoded ApplicationCreated
	if err := json.Unmarshal([]byte(pub.published[0]), &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.ApplicationID != evt.ApplicationID || decoded.TenantID != evt.TenantID {
		t.Fatalf("payload mismatch: %+v", decoded)
	}

	var row model.OutboxEvent
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Status != model.OutboxPublished {
		t.Fatalf("expected published status, got %q", row.Status)
	}
	if row.PublishedAt == nil {
		t.Fatal("expected published timestamp")
	}
}

func TestDispatcher_RetriesFailures(t *testing.T) {
	pub := &stubPublisher{failures: 1}
	d, db := newTestDispatcher(t, pub, 5)

	stageApplicationCreated(t, db)
	ctx := context.Background()

	if err := d.DispatchOnce(ctx); err != nil {
		t.Fatalf("first dispatch: %v", err)
	}
	var row model.OutboxEvent
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Status != model.OutboxPending {
		t.Fatalf("expected pending after failure, got %q", row.Status)
	}
	if row.Attempts != 1 || row.LastError == "" {
		t.Fatalf("expected recorded attempt, got attempts=%d lastError=%q", row.Attempts, row.LastError)
	}

	// Next tick succeeds.
	if err := d.DispatchOnce(ctx); err != nil {
		t.Fatalf("second dispatch: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected event published on retry, got %d", len(pub.published))
	}
}

func TestDispatcher_MarksExhaustedEventsFailed(t *testing.T) {
	pub := &stubPublisher{failures: 100}
	d, db := newTestDispatcher(t, pub, 2)

	stageApplicationCreated(t, db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := d.DispatchOnce(ctx); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}

	var row model.OutboxEvent
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Status != model.OutboxFailed {
		t.Fatalf("expected failed status after exhausting attempts, got %q", row.Status)
	}
	if row.Attempts != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", row.Attempts)
	}
}
