// Package commands contains write use cases for the orders module.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

// OrderRecorder counts created orders per channel.
type OrderRecorder interface {
	ObserveOrderCreated(origen string)
}

// CreateOrderCommand creates a new order from a client payload.
type CreateOrderCommand struct {
	Payload domain.Payload
	Channel domain.Channel
}

type CreateOrderHandler struct {
	repo      domain.OrderRepository
	publisher events.Publisher
	recorder  OrderRecorder
	logger    *slog.Logger
	now       func() time.Time
}

func NewCreateOrderHandler(
	repo domain.OrderRepository,
	publisher events.Publisher,
	recorder OrderRecorder,
	logger *slog.Logger,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		repo:      repo,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle validates and persists the order, then publishes its events.
// A declared total that differs from the line items is kept as sent and logged.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if err := domain.Validate(cmd.Payload, cmd.Channel); err != nil {
		return nil, err
	}

	order := domain.Build(cmd.Payload, cmd.Channel, h.now())

	id, err := h.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}
	order.AssignID(id)

	if !order.TotalMatchesItems() {
		h.logger.WarnContext(ctx, "order total differs from line items",
			slog.String("order_id", id),
			slog.String("total", order.Total().String()),
			slog.String("items_total", order.ItemsTotal().String()),
		)
	}

	if h.recorder != nil {
		h.recorder.ObserveOrderCreated(order.Channel().String())
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, order.PopDomainEvents()...); err != nil {
			return nil, fmt.Errorf("publishing events: %w", err)
		}
	}

	h.logger.InfoContext(ctx, "order created",
		slog.String("order_id", id),
		slog.String("origen", order.Channel().String()),
	)
	return order, nil
}
