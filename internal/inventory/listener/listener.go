package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/apperrors"
	"github.com/barberdesk/core-service/internal/inventory"
	"github.com/barberdesk/core-service/internal/inventory/dto"
	"github.com/barberdesk/core-service/internal/model"
)

// SaleListener consumes checkout events from the point-of-sale topic and
// records the corresponding sale movements, so retail sales rung up outside
// the console still hit the same ledger invariants.
type SaleListener struct {
	reader *kafka.Reader
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewSaleListener(reader *kafka.Reader, uc inventory.UseCase, log *zap.Logger) *SaleListener {
	return &SaleListener{
		reader: reader,
		uc:     uc,
		logger: log,
	}
}

type SaleCompletedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	SaleID        string         `json:"sale_id"`
	PaymentMethod string         `json:"payment_method"`
	Items         []SaleItemLine `json:"items"`
}

type SaleItemLine struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func (l *SaleListener) Start(ctx context.Context) {
	l.logger.Info("starting sale event listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("stopping sale event listener")
			return
		default:
			msg, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *SaleListener) processMessage(ctx context.Context, value []byte) {
	var event SaleCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "SaleCompleted" {
		return
	}

	l.logger.Info("processing SaleCompleted event", zap.String("sale_id", event.Payload.SaleID))

	for _, item := range event.Payload.Items {
		_, err := l.uc.RecordMovement(ctx, &dto.RecordMovementInput{
			ProductID:     item.ProductID,
			Kind:          model.MovementSale,
			Quantity:      item.Quantity,
			PaymentMethod: model.PaymentMethod(event.Payload.PaymentMethod),
		})
		if err != nil {
			// Business rejections are final; only log them. The event is
			// not replayed because the caller's intent was invalid.
			if apperrors.IsInsufficientStock(err) || apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
				l.logger.Warn("sale event rejected by ledger",
					zap.String("sale_id", event.Payload.SaleID),
					zap.String("product_id", item.ProductID),
					zap.Error(err),
				)
				continue
			}
			l.logger.Error("failed to record sale movement",
				zap.String("sale_id", event.Payload.SaleID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
