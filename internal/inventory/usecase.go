package inventory

import (
	"context"

	"github.com/barberdesk/core-service/internal/inventory/dto"
	"github.com/barberdesk/core-service/internal/model"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)

	// RecordMovement is the only path that changes stock. The stock check
	// and the stock update happen under a per-product lock.
	RecordMovement(ctx context.Context, input *dto.RecordMovementInput) (*model.StockMovement, error)

	CurrentStock(ctx context.Context, productID string) (int64, error)
	History(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}
