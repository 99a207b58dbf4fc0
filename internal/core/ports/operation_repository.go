package ports

import (
	"context"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

// OperationRepository persists bulk-send audit records. Writes are
// append-only; there is no update or delete.
type OperationRepository interface {
	// Create inserts the operation. It independently verifies that
	// op.UserID references an existing user and fails with
	// domain.ErrUserNotFound otherwise, writing nothing.
	Create(ctx context.Context, op *domain.Operation) error

	// ListByUser returns summaries of the user's operations, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.OperationSummary, error)

	// FindByID retrieves one operation scoped to its owner. A record owned
	// by another user is indistinguishable from a missing one.
	FindByID(ctx context.Context, operationID, userID string) (*domain.Operation, error)
}
