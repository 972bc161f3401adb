package domain

import "github.com/pangolivas/gensemen-pro/modules/shared/events"

const OrderCreatedEventType events.EventType = "orders.OrderCreated"

// OrderCreatedEvent is published once a new order has been persisted.
type OrderCreatedEvent struct {
	events.BaseEvent
	OrderID      string  `json:"order_id"`
	Origen       string  `json:"origen"`
	ClienteEmail string  `json:"cliente_email"`
	Total        float64 `json:"total"`
	ItemCount    int     `json:"item_count"`
}

func NewOrderCreatedEvent(order *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		BaseEvent:    events.NewBaseEvent(OrderCreatedEventType, order.ID()),
		OrderID:      order.ID(),
		Origen:       order.Channel().String(),
		ClienteEmail: order.Customer().Email,
		Total:        order.Total().InexactFloat64(),
		ItemCount:    len(order.Items()),
	}
}
