package domain

import "context"

// RecordSource reads products from one storage layout.
// Implementations may push the filter down to the store; callers must not
// rely on it being applied.
type RecordSource interface {
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Product, error)
}

// InventoryRepository reads the inventario collection.
type InventoryRepository interface {
	FindByID(ctx context.Context, id string) (InventoryItem, error)
	ListWithMinDosis(ctx context.Context, minDosis int) ([]InventoryItem, error)
}
