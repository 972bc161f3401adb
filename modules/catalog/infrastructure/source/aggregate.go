package source

import (
	"context"
	"errors"
	"strconv"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// AggregateDocumentSource reads products from an array field of a single document.
type AggregateDocumentSource struct {
	store      docstore.Store
	collection string
	document   string
	field      string
}

func NewAggregateDocumentSource(store docstore.Store, collection, document, field string) *AggregateDocumentSource {
	return &AggregateDocumentSource{
		store:      store,
		collection: collection,
		document:   document,
		field:      field,
	}
}

// List returns every array entry in stored order. A missing document yields
// an empty list. Filtering is left to the caller.
func (s *AggregateDocumentSource) List(ctx context.Context, _ domain.ListFilter) ([]domain.Entry, error) {
	doc, err := s.store.Get(ctx, s.collection, s.document)
	if errors.Is(err, docstore.ErrNotFound) {
		return []domain.Entry{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStoreError("get "+s.collection+"/"+s.document, err)
	}

	values, _ := doc.Data[s.field].([]any)
	entries := make([]domain.Entry, len(values))
	for i, v := range values {
		raw, _ := v.(map[string]any)
		product := domain.Normalize(raw, domain.VariantAggregate)
		storedID := product.ID
		if product.ID == "" {
			product.ID = strconv.Itoa(i)
		}
		entries[i] = domain.Entry{StoredID: storedID, Product: product}
	}
	return entries, nil
}

func (s *AggregateDocumentSource) GetByID(ctx context.Context, id string) (domain.Product, error) {
	entries, err := s.List(ctx, domain.ListFilter{})
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Resolve(entries, id)
}
