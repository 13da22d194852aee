package candidate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/testutil"
)

func TestCandidates_AreGloballyVisible(t *testing.T) {
	svc := NewService(testutil.NewDB(t, &model.Candidate{}))
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		Skills:            "Go, SQL",
		YearsOfExperience: 5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// No tenant context exists on this path at all; the profile is
	// reachable by anyone.
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("expected the created profile, got %+v", all)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != "Jane Doe" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestCandidates_UpdateAndDelete(t *testing.T) {
	svc := NewService(testutil.NewDB(t, &model.Candidate{}))
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{FullName: "Jane Doe", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, Input{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		YearsOfExperience: 6,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.YearsOfExperience != 6 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("deleting a missing profile: expected ErrNotFound, got %v", err)
	}
}
