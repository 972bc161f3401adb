// Package queries contains read use cases for the catalog module.
package queries

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
)

// ListProductsQuery lists storefront products.
type ListProductsQuery struct {
	Categoria  string
	Disponible bool
}

type ListProductsHandler struct {
	source domain.RecordSource
	logger *slog.Logger
}

func NewListProductsHandler(source domain.RecordSource, logger *slog.Logger) *ListProductsHandler {
	return &ListProductsHandler{source: source, logger: logger}
}

// Handle returns the matching products sorted by nombre. The result is never nil.
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	filter := domain.ListFilter{Categoria: query.Categoria, SoloDisponibles: query.Disponible}

	entries, err := h.source.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	products := make([]domain.Product, len(entries))
	for i, e := range entries {
		products[i] = e.Product
	}

	products = filter.Apply(products)
	domain.SortByNombre(products)

	h.logger.DebugContext(ctx, "products listed",
		slog.Int("read", len(entries)),
		slog.Int("returned", len(products)),
		slog.String("categoria", query.Categoria),
		slog.Bool("disponible", query.Disponible),
	)
	return products, nil
}
