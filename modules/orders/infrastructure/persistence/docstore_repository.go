// Package persistence implements repository interfaces for orders.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// Field names of a stored order.
const (
	fieldCreatedAt = "fechaCreacion"
	fieldDate      = "fecha"
	fieldStatus    = "estado"
	fieldEmail     = "cliente.email"
)

// DocstoreRepository stores orders as documents in one collection.
type DocstoreRepository struct {
	store      docstore.Store
	collection string
}

func NewDocstoreRepository(store docstore.Store, collection string) *DocstoreRepository {
	return &DocstoreRepository{store: store, collection: collection}
}

func (r *DocstoreRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	id, err := r.store.Create(ctx, r.collection, toDocument(order))
	if err != nil {
		return "", apperrors.NewStoreError("create "+r.collection, err)
	}
	return id, nil
}

func (r *DocstoreRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	doc, err := r.store.Get(ctx, r.collection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError("get "+r.collection, err)
	}
	return fromDocument(doc), nil
}

// List returns orders by descending fecha. Every order carries fecha in the
// fixed-width UTC layout, so string order is time order on all backends.
// Orders stored without fecha are not listed.
func (r *DocstoreRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Order, error) {
	q := docstore.Query{
		Collection: r.collection,
		OrderBy:    fieldDate,
		Direction:  docstore.Desc,
		Limit:      filter.Limit,
	}
	if filter.Estado != "" {
		q = q.Where(fieldStatus, docstore.OpEqual, filter.Estado.String())
	}
	if filter.ClienteEmail != "" {
		q = q.Where(fieldEmail, docstore.OpEqual, filter.ClienteEmail)
	}

	docs, err := r.store.Query(ctx, q)
	if err != nil {
		return nil, apperrors.NewStoreError("query "+r.collection, err)
	}

	orders := make([]*domain.Order, len(docs))
	for i, doc := range docs {
		orders[i] = fromDocument(doc)
	}
	return orders, nil
}

func toDocument(order *domain.Order) map[string]any {
	c := order.Customer()
	cliente := map[string]any{
		"nombre":   c.Nombre,
		"email":    c.Email,
		"telefono": c.Telefono,
	}

	items := make([]any, len(order.Items()))
	for i, item := range order.Items() {
		items[i] = map[string]any{
			"id":       item.ProductID,
			"nombre":   item.Nombre,
			"cantidad": int64(item.Cantidad),
			"precio":   item.Precio.InexactFloat64(),
			"subtotal": item.Subtotal().InexactFloat64(),
		}
	}

	doc := map[string]any{
		"cliente":            cliente,
		"items":              items,
		"productos":          items,
		"total":              order.Total().InexactFloat64(),
		fieldStatus:          order.Status().String(),
		"origen":             order.Channel().String(),
		"notas":              order.Notes(),
		fieldCreatedAt:       order.CreatedAt(),
		fieldDate:            order.CreatedAt().Format(domain.LegacyTimeLayout),
		"fechaActualizacion": order.UpdatedAt(),
	}

	if order.Channel() == domain.ChannelStore {
		cliente["direccion"] = c.Direccion
		cliente["rfc"] = c.RFC
		doc["metodoPago"] = order.PaymentMethod()
		doc["estadoPago"] = order.PaymentStatus().String()
	}
	return doc
}

func fromDocument(doc docstore.Document) *domain.Order {
	data := doc.Data
	cliente, _ := data["cliente"].(map[string]any)

	rawItems, _ := data["items"].([]any)
	if len(rawItems) == 0 {
		rawItems, _ = data["productos"].([]any)
	}
	items := make([]domain.LineItem, 0, len(rawItems))
	for _, v := range rawItems {
		m, _ := v.(map[string]any)
		items = append(items, domain.LineItem{
			ProductID: str(m, "id"),
			Nombre:    str(m, "nombre"),
			Cantidad:  int(num(m, "cantidad")),
			Precio:    decimal.NewFromFloat(num(m, "precio")),
		})
	}

	createdAt, ok := timestamp(data[fieldCreatedAt])
	if !ok {
		createdAt, _ = timestamp(data[fieldDate])
	}
	updatedAt, ok := timestamp(data["fechaActualizacion"])
	if !ok {
		updatedAt = createdAt
	}

	return domain.Reconstitute(
		doc.ID,
		domain.Customer{
			Nombre:    str(cliente, "nombre"),
			Email:     str(cliente, "email"),
			Telefono:  str(cliente, "telefono"),
			Direccion: str(cliente, "direccion"),
			RFC:       str(cliente, "rfc"),
		},
		items,
		decimal.NewFromFloat(num(data, "total")),
		domain.Status(str(data, fieldStatus)),
		domain.Status(str(data, "estadoPago")),
		str(data, "metodoPago"),
		domain.Channel(str(data, "origen")),
		str(data, "notas"),
		createdAt,
		updatedAt,
	)
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]any, key string) float64 {
	switch n := m[key].(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// timestamp accepts native times and the string forms written by the
// Spanner backend and the legacy fecha field.
func timestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.UTC(), true
	}
	return time.Time{}, false
}

// Compile-time interface check.
var _ domain.OrderRepository = (*DocstoreRepository)(nil)
