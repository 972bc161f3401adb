package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pangolivas/gensemen-pro/internal/platform/config"
	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/internal/platform/docstore/memory"
	"github.com/pangolivas/gensemen-pro/internal/platform/eventbus"
	"github.com/pangolivas/gensemen-pro/internal/platform/firestore"
	"github.com/pangolivas/gensemen-pro/internal/platform/httpserver"
	"github.com/pangolivas/gensemen-pro/internal/platform/metrics"
	"github.com/pangolivas/gensemen-pro/internal/platform/spanner"
	"github.com/pangolivas/gensemen-pro/modules/catalog"
	catalogdomain "github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	catalogsource "github.com/pangolivas/gensemen-pro/modules/catalog/infrastructure/source"
	"github.com/pangolivas/gensemen-pro/modules/notifications"
	"github.com/pangolivas/gensemen-pro/modules/orders"
	orderspersistence "github.com/pangolivas/gensemen-pro/modules/orders/infrastructure/persistence"
)

// Stored collection names.
const (
	inventoryCollection = "inventario"
	ordersCollection    = "pedidos"
)

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (docstore.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverFirestore:
		fsCfg := firestore.Config{ProjectID: cfg.Firestore.ProjectID, DatabaseID: cfg.Firestore.DatabaseID}
		client, err := firestore.NewClient(ctx, fsCfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to firestore",
			slog.String("project", fsCfg.ProjectID),
			slog.String("database", fsCfg.Database()),
		)
		return firestore.NewStore(client), func() { _ = client.Close() }, nil

	case config.DriverSpanner:
		spCfg := spanner.Config{
			ProjectID:  cfg.Spanner.ProjectID,
			InstanceID: cfg.Spanner.InstanceID,
			DatabaseID: cfg.Spanner.DatabaseID,
		}
		client, err := spanner.NewClient(ctx, spCfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to spanner",
			slog.String("dsn", spCfg.DSN()),
			slog.Bool("emulator", spanner.Emulated()),
		)
		return spanner.NewStore(client), client.Close, nil

	case config.DriverMemory:
		logger.Warn("using in-memory document store; data is lost on exit")
		return memory.New(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver: %q", cfg.Driver)
}

// newHandler builds the router with every module mounted and the middleware chain applied.
func newHandler(cfg config.Config, store docstore.Store, registry *metrics.Registry, logger *slog.Logger) (http.Handler, error) {
	store = docstore.Instrument(store, registry, logger)

	// Initialize event bus (for inter-module communication)
	eventBus := eventbus.New(logger)

	source, err := catalogSource(cfg.Catalog, store)
	if err != nil {
		return nil, err
	}

	catalogModule := catalog.New(catalog.Config{
		Source:    source,
		Inventory: catalogsource.NewInventoryRepository(store, inventoryCollection),
		Logger:    logger,
	})

	ordersModule := orders.New(orders.Config{
		Repository:     orderspersistence.NewDocstoreRepository(store, ordersCollection),
		EventPublisher: eventBus,
		Recorder:       registry,
		Logger:         logger,
	})

	if _, err := notifications.New(notifications.Config{EventSubscriber: eventBus, Logger: logger}); err != nil {
		return nil, fmt.Errorf("initializing notifications: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("GET /metrics", registry.Handler())

	// Each module registers its own routes
	catalogModule.RegisterRoutes(mux)
	ordersModule.RegisterRoutes(mux)

	return httpserver.Middleware(mux,
		httpserver.Recovery(logger),
		httpserver.Logging(logger),
		httpserver.Metrics(registry),
		httpserver.CORS(cfg.CORS),
	), nil
}

func catalogSource(cfg config.CatalogConfig, store docstore.Store) (catalogdomain.RecordSource, error) {
	switch cfg.Source {
	case config.SourceCollection:
		return catalogsource.NewCollectionSource(store, cfg.ProductsCollection), nil
	case config.SourceAggregate:
		collection, id, ok := cfg.AggregateRef()
		if !ok {
			return nil, fmt.Errorf("invalid aggregate document %q", cfg.AggregateDocument)
		}
		return catalogsource.NewAggregateDocumentSource(store, collection, id, cfg.AggregateField), nil
	}
	return nil, fmt.Errorf("unknown catalog source: %q", cfg.Source)
}
