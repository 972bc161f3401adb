// Package catalog exposes the product catalog and inventory.
// This is the public API for the catalog bounded context.
package catalog

import (
	"log/slog"
	"net/http"

	"github.com/pangolivas/gensemen-pro/modules/catalog/application/commands"
	"github.com/pangolivas/gensemen-pro/modules/catalog/application/queries"
	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	httphandler "github.com/pangolivas/gensemen-pro/modules/catalog/infrastructure/http"
)

// Module is the public API for the catalog bounded context.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	// Source reads products from the configured storage layout.
	Source    domain.RecordSource
	Inventory domain.InventoryRepository
	Logger    *slog.Logger
}

type module struct {
	listProductsHandler  *queries.ListProductsHandler
	getProductHandler    *queries.GetProductHandler
	getInventoryHandler  *queries.GetInventoryHandler
	createProductHandler *commands.CreateProductHandler
}

// New creates a new catalog module.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "catalog")

	return &module{
		listProductsHandler:  queries.NewListProductsHandler(cfg.Source, logger),
		getProductHandler:    queries.NewGetProductHandler(cfg.Source),
		getInventoryHandler:  queries.NewGetInventoryHandler(cfg.Inventory),
		createProductHandler: commands.NewCreateProductHandler(),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux, m.listProductsHandler, m.getProductHandler, m.getInventoryHandler, m.createProductHandler)
}
