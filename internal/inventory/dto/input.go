package dto

import (
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/money"
)

type CreateProductInput struct {
	Name         string
	UnitPrice    money.Money
	InitialStock int64
}

type RecordMovementInput struct {
	ProductID     string
	Kind          model.MovementKind
	Quantity      int64
	PaymentMethod model.PaymentMethod // required for sales, ignored for purchases
}

type MovementFilters struct {
	ProductID string
	Kind      model.MovementKind
	Page      int
	PageSize  int
}
