package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

func seedOperations(t *testing.T) (*OperationService, *stubOperationRepo) {
	t.Helper()
	repo := newStubOperationRepo("user-1", "user-2")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, row := range []struct{ id, user, subject string }{
		{"op-1", "user-1", "first"},
		{"op-2", "user-1", "second"},
		{"op-3", "user-2", "other user"},
	} {
		err := repo.Create(context.Background(), &domain.Operation{
			ID:               row.id,
			UserID:           row.user,
			Subject:          row.subject,
			FromEmail:        "alice@example.com",
			SuccessReceivers: []string{"a@x.com"},
			FailedReceivers:  []string{},
			CreatedAt:        base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("seed %s: %v", row.id, err)
		}
	}
	return NewOperationService(repo, zerolog.Nop()), repo
}

func TestOperationService_ListByUser_ScopedAndNewestFirst(t *testing.T) {
	svc, _ := seedOperations(t)

	summaries, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != "op-2" || summaries[1].ID != "op-1" {
		t.Fatalf("expected newest first, got %+v", summaries)
	}
	for _, s := range summaries {
		if s.Subject == "other user" {
			t.Fatalf("leaked another user's operation")
		}
	}
}

func TestOperationService_GetByID(t *testing.T) {
	svc, _ := seedOperations(t)

	op, err := svc.GetByID(context.Background(), "op-1", "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if op.Subject != "first" {
		t.Fatalf("unexpected operation: %+v", op)
	}
}

func TestOperationService_GetByID_OtherOwnerLooksMissing(t *testing.T) {
	svc, _ := seedOperations(t)

	if _, err := svc.GetByID(context.Background(), "op-3", "user-1"); !errors.Is(err, domain.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "ghost", "user-1"); !errors.Is(err, domain.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}
