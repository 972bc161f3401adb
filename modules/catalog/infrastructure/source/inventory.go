package source

import (
	"context"
	"errors"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// InventoryRepository implements domain.InventoryRepository over a stock collection.
type InventoryRepository struct {
	store      docstore.Store
	collection string
}

func NewInventoryRepository(store docstore.Store, collection string) *InventoryRepository {
	return &InventoryRepository{store: store, collection: collection}
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (domain.InventoryItem, error) {
	doc, err := r.store.Get(ctx, r.collection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.InventoryItem{}, domain.ErrInventoryItemNotFound
	}
	if err != nil {
		return domain.InventoryItem{}, apperrors.NewStoreError("get "+r.collection, err)
	}
	return domain.NormalizeInventory(doc.ID, doc.Data), nil
}

func (r *InventoryRepository) ListWithMinDosis(ctx context.Context, minDosis int) ([]domain.InventoryItem, error) {
	q := docstore.Query{Collection: r.collection}.Where("dosis", docstore.OpGreaterEqual, minDosis)

	docs, err := r.store.Query(ctx, q)
	if err != nil {
		return nil, apperrors.NewStoreError("query "+r.collection, err)
	}

	items := make([]domain.InventoryItem, len(docs))
	for i, doc := range docs {
		items[i] = domain.NormalizeInventory(doc.ID, doc.Data)
	}
	return items, nil
}
