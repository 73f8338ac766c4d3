package model

import (
	"time"

	"github.com/barberdesk/core-service/internal/money"
)

type MovementKind string

const (
	MovementSale     MovementKind = "sale"
	MovementPurchase MovementKind = "purchase"
)

func (k MovementKind) Valid() bool {
	return k == MovementSale || k == MovementPurchase
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentPix      PaymentMethod = "pix"
	PaymentTransfer PaymentMethod = "transfer"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentPix, PaymentTransfer:
		return true
	}
	return false
}

type Product struct {
	BaseModel
	Name      string      `db:"name" json:"name"`
	UnitPrice money.Money `db:"unit_price" json:"unit_price"`
	Stock     int64       `db:"stock" json:"stock"`
}

// StockMovement is an append-only ledger row. TotalValue snapshots
// unit_price * quantity at commit time; later price edits never rewrite it.
// StockBefore/StockAfter record the product stock around the movement for
// auditing.
type StockMovement struct {
	ID            string         `db:"id" json:"id"`
	ProductID     string         `db:"product_id" json:"product_id"`
	Kind          MovementKind   `db:"kind" json:"kind"`
	Quantity      int64          `db:"quantity" json:"quantity"`
	PaymentMethod *PaymentMethod `db:"payment_method" json:"payment_method"` // Sale only
	TotalValue    money.Money    `db:"total_value" json:"total_value"`
	StockBefore   int64          `db:"stock_before" json:"stock_before"`
	StockAfter    int64          `db:"stock_after" json:"stock_after"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// SignedQuantity is the movement's effect on stock: positive for purchases,
// negative for sales.
func (m *StockMovement) SignedQuantity() int64 {
	if m.Kind == MovementSale {
		return -m.Quantity
	}
	return m.Quantity
}
