package ports

import (
	"context"

	"ramal/internal/domain"
)

// OperationJournal records lifecycle operation outcomes for the history
// view. Advisory storage only: losing it never affects correctness.
type OperationJournal interface {
	Append(ctx context.Context, rec domain.OperationRecord) error
	Recent(ctx context.Context, limit int) ([]domain.OperationRecord, error)
	Close() error
}
