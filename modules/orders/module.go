// Package orders provides order intake and lookup.
// This is the public API for the orders bounded context.
package orders

import (
	"log/slog"
	"net/http"

	"github.com/pangolivas/gensemen-pro/modules/orders/application/commands"
	"github.com/pangolivas/gensemen-pro/modules/orders/application/queries"
	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	httphandler "github.com/pangolivas/gensemen-pro/modules/orders/infrastructure/http"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

// Module is the public API for the orders bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: Domain Events (published on creation)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	Repository     domain.OrderRepository
	EventPublisher events.Publisher
	// Recorder is optional.
	Recorder commands.OrderRecorder
	Logger   *slog.Logger
}

type module struct {
	createOrderHandler *commands.CreateOrderHandler
	getOrderHandler    *queries.GetOrderHandler
	listOrdersHandler  *queries.ListOrdersHandler
}

// New creates a new orders module.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "orders")

	return &module{
		createOrderHandler: commands.NewCreateOrderHandler(cfg.Repository, cfg.EventPublisher, cfg.Recorder, logger),
		getOrderHandler:    queries.NewGetOrderHandler(cfg.Repository),
		listOrdersHandler:  queries.NewListOrdersHandler(cfg.Repository),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux, m.createOrderHandler, m.getOrderHandler, m.listOrdersHandler)
}
