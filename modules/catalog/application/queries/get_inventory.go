package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// DefaultMinDosis is the dose threshold applied when the query sets none.
const DefaultMinDosis = 1

// GetInventoryQuery reads either one inventory item or the list of items
// holding at least MinDosis doses.
type GetInventoryQuery struct {
	ProductoID string
	// MinDosis of nil means DefaultMinDosis.
	MinDosis *int
}

// ProductStock is the single-item inventory view.
type ProductStock struct {
	Disponible       bool          `json:"disponible"`
	DosisDisponibles int           `json:"dosis_disponibles"`
	Producto         StockProducto `json:"producto"`
}

type StockProducto struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Dosis  int     `json:"dosis"`
	Precio float64 `json:"precio"`
}

// InventoryReport is the list inventory view.
type InventoryReport struct {
	Resumen    domain.Summary         `json:"resumen"`
	Inventario []domain.InventoryItem `json:"inventario"`
}

// InventoryResult holds exactly one of Stock or Report.
type InventoryResult struct {
	Stock  *ProductStock
	Report *InventoryReport
}

type GetInventoryHandler struct {
	repo domain.InventoryRepository
}

func NewGetInventoryHandler(repo domain.InventoryRepository) *GetInventoryHandler {
	return &GetInventoryHandler{repo: repo}
}

func (h *GetInventoryHandler) Handle(ctx context.Context, query GetInventoryQuery) (InventoryResult, error) {
	if query.ProductoID != "" {
		stock, err := h.stock(ctx, query.ProductoID)
		if err != nil {
			return InventoryResult{}, err
		}
		return InventoryResult{Stock: stock}, nil
	}

	minDosis := DefaultMinDosis
	if query.MinDosis != nil {
		minDosis = *query.MinDosis
	}

	items, err := h.repo.ListWithMinDosis(ctx, minDosis)
	if err != nil {
		return InventoryResult{}, fmt.Errorf("listing inventory: %w", err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}

	return InventoryResult{Report: &InventoryReport{
		Resumen:    domain.Summarize(items),
		Inventario: items,
	}}, nil
}

func (h *GetInventoryHandler) stock(ctx context.Context, id string) (*ProductStock, error) {
	item, err := h.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrInventoryItemNotFound) {
		return nil, apperrors.NewNotFoundError("Producto", id, domain.ErrInventoryItemNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory item %s: %w", id, err)
	}

	return &ProductStock{
		Disponible:       item.Disponible,
		DosisDisponibles: item.Dosis,
		Producto: StockProducto{
			ID:     item.ID,
			Nombre: item.Nombre,
			Dosis:  item.Dosis,
			Precio: item.Precio,
		},
	}, nil
}
