package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/apperrors"
	"github.com/barberdesk/core-service/internal/inventory"
	"github.com/barberdesk/core-service/internal/inventory/dto"
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/pkg/locker"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	locks  locker.Locker
	logger *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, locks locker.Locker, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		locks:  locks,
		logger: log,
	}
}

func stockLockKey(productID string) string {
	return "lock:stock:" + productID
}

func (uc *inventoryUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidation("name", "must not be empty")
	}
	if input.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidation("unit_price", "must not be negative")
	}
	if input.InitialStock < 0 {
		return nil, apperrors.NewValidation("initial_stock", "must not be negative")
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		Stock:     input.InitialStock,
	}

	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int64("initial_stock", p.Stock),
	)
	return p, nil
}

func (uc *inventoryUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("product", id)
	}
	return p, nil
}

func (uc *inventoryUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.ListProducts(ctx)
}

func (uc *inventoryUseCase) RecordMovement(ctx context.Context, input *dto.RecordMovementInput) (*model.StockMovement, error) {
	if !input.Kind.Valid() {
		return nil, apperrors.NewValidation("kind", "unknown movement kind")
	}
	if input.Quantity <= 0 {
		return nil, apperrors.NewValidation("quantity", "must be positive")
	}
	var payment *model.PaymentMethod
	if input.Kind == model.MovementSale {
		if !input.PaymentMethod.Valid() {
			return nil, apperrors.NewValidation("payment_method", "unknown payment method")
		}
		pm := input.PaymentMethod
		payment = &pm
	}

	// Serialize the check-and-adjust per product so two concurrent sales
	// cannot both pass the sufficiency check against a stale stock value.
	release, err := uc.locks.Acquire(ctx, stockLockKey(input.ProductID))
	if err != nil {
		return nil, err
	}
	defer release()

	p, err := uc.repo.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("product", input.ProductID)
	}

	stockBefore := p.Stock
	var stockAfter int64
	switch input.Kind {
	case model.MovementSale:
		if input.Quantity > p.Stock {
			return nil, apperrors.NewInsufficientStock(p.ID, input.Quantity, p.Stock)
		}
		stockAfter = p.Stock - input.Quantity
	case model.MovementPurchase:
		stockAfter = p.Stock + input.Quantity
	}

	now := time.Now()
	movement := &model.StockMovement{
		ID:            uuid.New().String(),
		ProductID:     p.ID,
		Kind:          input.Kind,
		Quantity:      input.Quantity,
		PaymentMethod: payment,
		TotalValue:    p.UnitPrice.MulQty(input.Quantity),
		StockBefore:   stockBefore,
		StockAfter:    stockAfter,
		CreatedAt:     now,
	}

	p.Stock = stockAfter
	p.UpdatedAt = now

	if err := uc.repo.ApplyMovement(ctx, p, movement); err != nil {
		return nil, err
	}

	uc.logger.Info("stock movement recorded",
		zap.String("product_id", p.ID),
		zap.String("kind", string(movement.Kind)),
		zap.Int64("quantity", movement.Quantity),
		zap.Int64("stock_after", stockAfter),
		zap.String("total_value", movement.TotalValue.String()),
	)
	return movement, nil
}

func (uc *inventoryUseCase) CurrentStock(ctx context.Context, productID string) (int64, error) {
	p, err := uc.GetProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return p.Stock, nil
}

func (uc *inventoryUseCase) History(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}
