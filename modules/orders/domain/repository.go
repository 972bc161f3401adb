package domain

import "context"

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order and returns the store-assigned id.
	Create(ctx context.Context, order *Order) (string, error)
	FindByID(ctx context.Context, id string) (*Order, error)
	// List returns orders newest first.
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
}

// ListFilter restricts an order listing. Empty fields match everything.
type ListFilter struct {
	Estado       Status
	ClienteEmail string
	Limit        int
}
