// Package eventhandlers reacts to events published by other modules.
package eventhandlers

import (
	"context"
	"log/slog"

	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

// OrderCreatedHandler announces new orders to the sales team.
// Delivery is a structured log line; there is no mail transport.
type OrderCreatedHandler struct {
	logger *slog.Logger
}

func NewOrderCreatedHandler(logger *slog.Logger) *OrderCreatedHandler {
	return &OrderCreatedHandler{logger: logger}
}

func (h *OrderCreatedHandler) Handle(ctx context.Context, event events.Event) error {
	created, ok := event.(domain.OrderCreatedEvent)
	if !ok {
		h.logger.WarnContext(ctx, "unexpected event payload",
			slog.String("event_type", event.EventType().String()),
			slog.String("event_id", event.EventID()),
		)
		return nil
	}

	h.logger.InfoContext(ctx, "new order notification",
		slog.String("order_id", created.OrderID),
		slog.String("origen", created.Origen),
		slog.String("cliente_email", created.ClienteEmail),
		slog.Float64("total", created.Total),
		slog.Int("items", created.ItemCount),
		slog.String("event_id", created.EventID()),
		slog.Time("occurred_at", created.OccurredAt()),
	)
	return nil
}
