// Package source implements catalog reads over the document store.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// CollectionSource reads products stored one document per product.
type CollectionSource struct {
	store      docstore.Store
	collection string
}

func NewCollectionSource(store docstore.Store, collection string) *CollectionSource {
	return &CollectionSource{store: store, collection: collection}
}

func (s *CollectionSource) List(ctx context.Context, filter domain.ListFilter) ([]domain.Entry, error) {
	q := docstore.Query{Collection: s.collection}
	if filter.SoloDisponibles {
		q = q.Where("disponibleTienda", docstore.OpEqual, true)
	}

	docs, err := s.store.Query(ctx, q)
	if err != nil {
		return nil, apperrors.NewStoreError("query "+s.collection, err)
	}

	entries := make([]domain.Entry, len(docs))
	for i, doc := range docs {
		entries[i] = toEntry(doc)
	}
	return entries, nil
}

// GetByID tries the document id first, then resolves id against the whole
// collection by position or codigo.
func (s *CollectionSource) GetByID(ctx context.Context, id string) (domain.Product, error) {
	doc, err := s.store.Get(ctx, s.collection, id)
	if err == nil {
		return toEntry(doc).Product, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return domain.Product{}, apperrors.NewStoreError("get "+s.collection, err)
	}

	entries, err := s.List(ctx, domain.ListFilter{})
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanning %s: %w", s.collection, err)
	}
	return domain.Resolve(entries, id)
}

func toEntry(doc docstore.Document) domain.Entry {
	product := domain.Normalize(doc.Data, domain.VariantCollection)
	product.ID = doc.ID
	return domain.Entry{StoredID: doc.ID, Product: product}
}
