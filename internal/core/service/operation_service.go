package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/applyflow/outreach-system/internal/core/domain"
	"github.com/applyflow/outreach-system/internal/core/ports"
)

// OperationService exposes a user's bulk-send history, always scoped to
// the requesting user.
type OperationService struct {
	operations ports.OperationRepository
	logger     zerolog.Logger
}

func NewOperationService(operations ports.OperationRepository, logger zerolog.Logger) *OperationService {
	return &OperationService{operations: operations, logger: logger}
}

func (s *OperationService) ListByUser(ctx context.Context, userID string) ([]domain.OperationSummary, error) {
	summaries, err := s.operations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return summaries, nil
}

func (s *OperationService) GetByID(ctx context.Context, operationID, userID string) (*domain.Operation, error) {
	op, err := s.operations.FindByID(ctx, operationID, userID)
	if err != nil {
		return nil, err
	}
	return op, nil
}
