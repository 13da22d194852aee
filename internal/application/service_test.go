package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/event"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"github.com/ssengur01/TalentFlows/internal/testutil"
	"gorm.io/gorm"
)

const testTopic = "talentflows.applications"

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &model.Application{}, &model.Candidate{}, &model.OutboxEvent{})
	return NewService(db, testTopic), db
}

func TestCreate_AlwaysStartsApplied(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	tc := tenant.NewContext(uuid.New())

	app, err := svc.Create(ctx, tc, Input{JobID: uuid.New(), CandidateID: uuid.New()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if app.Status != model.StatusApplied {
		t.Fatalf("new application must start as %q, got %q", model.StatusApplied, app.Status)
	}
	if app.AppliedAt.IsZero() {
		t.Fatal("appliedAt not stamped")
	}
	if app.TenantID != tc.TenantID() {
		t.Fatalf("application stamped with wrong tenant: %s", app.TenantID)
	}
}

func TestCreate_StagesOutboxEventInSameTransaction(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	tc := tenant.NewContext(uuid.New())

	profile := &model.Candidate{FullName: "Jane Doe", Email: "jane@example.com"}
	profile.StampTenant(uuid.New())
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed candidate: %v", err)
	}

	app, err := svc.Create(ctx, tc, Input{JobID: uuid.New(), CandidateID: profile.ID, CoverLetter: "hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var rows []model.OutboxEvent
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("read outbox: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one staged event, got %d", len(rows))
	}
	if rows[0].Topic != testTopic || rows[0].Status != model.OutboxPending {
		t.Fatalf("unexpected outbox row: %+v", rows[0])
	}

	var payload event.ApplicationCreated
	if err := json.Unmarshal([]byte(rows[0].Payload), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.ApplicationID != app.ID || payload.TenantID != tc.TenantID() {
		t.Fatalf("payload does not match the application: %+v", payload)
	}
	if payload.CandidateName != "Jane Doe" || payload.CandidateEmail != "jane@example.com" {
		t.Fatalf("payload missing candidate identity: %+v", payload)
	}
}

func TestCreate_WithoutTenantFails(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Create(context.Background(), tenant.Context{}, Input{JobID: uuid.New(), CandidateID: uuid.New()})
	if !errors.Is(err, model.ErrTenantRequired) {
		t.Fatalf("expected ErrTenantRequired, got %v", err)
	}

	// The transaction must have rolled back: no orphan outbox row.
	var count int64
	if err := db.Model(&model.OutboxEvent{}).Count(&count).Error; err != nil {
		t.Fatalf("count outbox: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no staged events, got %d", count)
	}
}

func TestUpdateStatus_AcceptsOnlyKnownStatuses(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	tc := tenant.NewContext(uuid.New())

	app, err := svc.Create(ctx, tc, Input{JobID: uuid.New(), CandidateID: uuid.New()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, bad := range []string{"Hired", "applied", "", "Offer "} {
		if _, err := svc.UpdateStatus(ctx, tc, app.ID, bad); !errors.Is(err, model.ErrInvalidStatus) {
			t.Fatalf("status %q: expected ErrInvalidStatus, got %v", bad, err)
		}
	}

	moved, err := svc.UpdateStatus(ctx, tc, app.ID, model.StatusOffer)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if moved.Status != model.StatusOffer {
		t.Fatalf("status not applied: %q", moved.Status)
	}
	if moved.JobID != app.JobID || moved.CandidateID != app.CandidateID {
		t.Fatalf("status change must not touch other fields: %+v", moved)
	}
}

func TestApplications_TenantIsolation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	tenantA := tenant.NewContext(uuid.New())
	tenantB := tenant.NewContext(uuid.New())

	app, err := svc.Create(ctx, tenantA, Input{JobID: uuid.New(), CandidateID: uuid.New()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, tenantB, app.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("cross-tenant get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, tenantB, app.ID, model.StatusReviewing); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("cross-tenant status change: expected ErrNotFound, got %v", err)
	}

	listB, err := svc.List(ctx, tenantB)
	if err != nil {
		t.Fatalf("list B: %v", err)
	}
	if len(listB) != 0 {
		t.Fatalf("tenant B must not see tenant A's applications, got %d", len(listB))
	}
}
