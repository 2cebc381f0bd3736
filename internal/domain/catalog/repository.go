package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRepository extends the generic gateway with the low-stock report
// query used to flag items that need restocking.
type ItemRepository interface {
	shared.Repository[Item]
	FindLowStock(ctx context.Context, owner *uuid.UUID, page shared.Page) ([]Item, error)
	CountLowStock(ctx context.Context, owner *uuid.UUID) (int64, error)
}
