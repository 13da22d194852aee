package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"github.com/ssengur01/TalentFlows/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.NewDB(t, &model.Job{}))
}

func TestCreate_JobStartsInactive(t *testing.T) {
	svc := newTestService(t)
	tc := tenant.NewContext(uuid.New())

	j, err := svc.Create(context.Background(), tc, Input{
		Title:       "Backend Engineer",
		Description: "Build services",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.IsActive {
		t.Fatal("fresh job must be inactive")
	}
	if j.PublishedAt != nil {
		t.Fatal("fresh job must have no publication timestamp")
	}
}

func TestPublish_ActivatesAndStampsTimestamp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tc := tenant.NewContext(uuid.New())

	j, err := svc.Create(ctx, tc, Input{Title: "Backend Engineer", Description: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published, err := svc.Publish(ctx, tc, j.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsActive {
		t.Fatal("published job must be active")
	}
	if published.PublishedAt == nil {
		t.Fatal("published job must carry a publication timestamp")
	}
}

func TestList_ExcludesUnpublishedJobs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tc := tenant.NewContext(uuid.New())

	draft, err := svc.Create(ctx, tc, Input{Title: "Draft", Description: "d"})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	live, err := svc.Create(ctx, tc, Input{Title: "Live", Description: "d"})
	if err != nil {
		t.Fatalf("create live: %v", err)
	}
	if _, err := svc.Publish(ctx, tc, live.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}

	jobs, err := svc.List(ctx, tc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != live.ID {
		t.Fatalf("expected only the published job, got %d", len(jobs))
	}

	// The draft is still reachable by ID for the owner's preview.
	got, err := svc.Get(ctx, tc, draft.ID)
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	if got.IsActive {
		t.Fatal("draft must stay inactive")
	}
}

func TestList_IsTenantIsolated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tenantA := tenant.NewContext(uuid.New())
	tenantB := tenant.NewContext(uuid.New())

	jobA, err := svc.Create(ctx, tenantA, Input{Title: "A", Description: "d"})
	if err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := svc.Publish(ctx, tenantA, jobA.ID); err != nil {
		t.Fatalf("publish A: %v", err)
	}

	jobB, err := svc.Create(ctx, tenantB, Input{Title: "B", Description: "d"})
	if err != nil {
		t.Fatalf("create B: %v", err)
	}
	if _, err := svc.Publish(ctx, tenantB, jobB.ID); err != nil {
		t.Fatalf("publish B: %v", err)
	}

	jobs, err := svc.List(ctx, tenantA)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "A" {
		t.Fatalf("tenant A board leaked tenant B's job: %+v", jobs)
	}
}

func TestUpdate_CrossTenantActsAsNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tenantA := tenant.NewContext(uuid.New())
	tenantB := tenant.NewContext(uuid.New())

	j, err := svc.Create(ctx, tenantA, Input{Title: "Backend Engineer", Description: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, tenantB, j.ID, Input{Title: "hijack", Description: "d"})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, tenantB, j.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("cross-tenant delete: expected ErrNotFound, got %v", err)
	}

	// Unchanged under its own tenant.
	got, err := svc.Get(ctx, tenantA, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Backend Engineer" {
		t.Fatalf("record mutated: %q", got.Title)
	}
}

func TestList_AnonymousUnresolvedTenantIsEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tc := tenant.NewContext(uuid.New())
	j, err := svc.Create(ctx, tc, Input{Title: "Backend Engineer", Description: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Publish(ctx, tc, j.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}

	jobs, err := svc.List(ctx, tenant.NewContext(uuid.Nil))
	if err != nil {
		t.Fatalf("list with unresolved tenant must not error: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty board, got %d jobs", len(jobs))
	}
}
