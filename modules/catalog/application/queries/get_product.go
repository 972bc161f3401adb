package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// GetProductQuery retrieves a product by stored id, position or codigo.
type GetProductQuery struct {
	ProductID string
}

type GetProductHandler struct {
	source domain.RecordSource
}

func NewGetProductHandler(source domain.RecordSource) *GetProductHandler {
	return &GetProductHandler{source: source}
}

func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (domain.Product, error) {
	if query.ProductID == "" {
		return domain.Product{}, apperrors.NewValidationError("id", "ID de producto requerido")
	}

	product, err := h.source.GetByID(ctx, query.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.Product{}, apperrors.NewNotFoundError("Producto", query.ProductID, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("getting product %s: %w", query.ProductID, err)
	}
	return product, nil
}
