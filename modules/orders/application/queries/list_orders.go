package queries

import (
	"context"
	"fmt"

	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
)

// MaxListLimit bounds every order listing.
const MaxListLimit = 50

// ListOrdersQuery lists the most recent orders.
type ListOrdersQuery struct {
	Estado       string
	ClienteEmail string
	// Limit outside 1..MaxListLimit means MaxListLimit.
	Limit int
}

type ListOrdersHandler struct {
	repo domain.OrderRepository
}

func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

func (h *ListOrdersHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*OrderDTO, error) {
	limit := query.Limit
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	orders, err := h.repo.List(ctx, domain.ListFilter{
		Estado:       domain.Status(query.Estado),
		ClienteEmail: query.ClienteEmail,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	dtos := make([]*OrderDTO, len(orders))
	for i, order := range orders {
		dtos[i] = ToOrderDTO(order)
	}
	return dtos, nil
}
