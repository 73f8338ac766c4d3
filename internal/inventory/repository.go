package inventory

import (
	"context"

	"github.com/barberdesk/core-service/internal/inventory/dto"
	"github.com/barberdesk/core-service/internal/model"
)

type Repository interface {
	CreateProduct(ctx context.Context, p *model.Product) error

	// GetProduct returns (nil, nil) when the id is unknown.
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)

	// ApplyMovement commits the new stock value and the movement row as one
	// transaction; on failure neither is visible.
	ApplyMovement(ctx context.Context, p *model.Product, m *model.StockMovement) error

	// ListMovements is ordered by created_at ascending.
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}
