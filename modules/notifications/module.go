// Package notifications tells the sales team about new orders.
package notifications

import (
	"log/slog"

	"github.com/pangolivas/gensemen-pro/modules/notifications/application/eventhandlers"
	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

// Module represents the notification module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
}

// New initializes the notification module and subscribes to events.
func New(cfg Config) (*Module, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "notifications")

	orderCreatedHandler := eventhandlers.NewOrderCreatedHandler(logger)
	if err := cfg.EventSubscriber.Subscribe(domain.OrderCreatedEventType, orderCreatedHandler); err != nil {
		return nil, err
	}

	return &Module{}, nil
}
