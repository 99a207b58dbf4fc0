package ports

import (
	"context"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

// OperationService exposes read access to a user's bulk-send history.
type OperationService interface {
	ListByUser(ctx context.Context, userID string) ([]domain.OperationSummary, error)
	GetByID(ctx context.Context, operationID, userID string) (*domain.Operation, error)
}
