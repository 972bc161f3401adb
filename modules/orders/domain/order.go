// Package domain contains business entities and rules for orders.
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	shareddomain "github.com/pangolivas/gensemen-pro/modules/shared/domain"
)

// LegacyTimeLayout is the ISO-8601 form of the legacy fecha field.
const LegacyTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Order is the aggregate root for the order bounded context.
type Order struct {
	shareddomain.AggregateRoot

	id            string
	customer      Customer
	items         []LineItem
	total         decimal.Decimal
	status        Status
	paymentStatus Status
	paymentMethod string
	channel       Channel
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

// Customer is the buyer's contact data. Direccion and RFC are only kept for
// storefront orders.
type Customer struct {
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	RFC       string
}

// LineItem is one product line of an order.
type LineItem struct {
	ProductID string
	Nombre    string
	Cantidad  int
	Precio    decimal.Decimal
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Build creates a pending order from a payload that passed Validate.
// The id is assigned by the store on persistence.
func Build(p Payload, channel Channel, now time.Time) *Order {
	now = now.UTC()

	lines := p.LineItems()
	items := make([]LineItem, len(lines))
	for i, in := range lines {
		items[i] = LineItem{
			ProductID: in.ID,
			Nombre:    in.Nombre,
			Cantidad:  in.Cantidad,
			Precio:    decimal.NewFromFloat(in.Precio),
		}
	}

	customer := Customer{
		Nombre:   p.Cliente.Nombre,
		Email:    p.Cliente.Email,
		Telefono: p.Cliente.Telefono,
	}

	o := &Order{
		customer:  customer,
		items:     items,
		total:     decimal.NewFromFloat(*p.Total),
		status:    StatusPending,
		channel:   channel,
		notes:     p.Notas,
		createdAt: now,
		updatedAt: now,
	}

	if channel == ChannelStore {
		o.customer.Direccion = p.Cliente.Direccion
		o.customer.RFC = p.Cliente.RFC
		o.paymentMethod = p.MetodoPago
		o.paymentStatus = StatusPending
	}
	return o
}

// Reconstitute rebuilds an order from persistence.
func Reconstitute(
	id string,
	customer Customer,
	items []LineItem,
	total decimal.Decimal,
	status, paymentStatus Status,
	paymentMethod string,
	channel Channel,
	notes string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		customer:      customer,
		items:         items,
		total:         total,
		status:        status,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		channel:       channel,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Getters

func (o *Order) ID() string             { return o.id }
func (o *Order) Customer() Customer     { return o.customer }
func (o *Order) Items() []LineItem      { return o.items }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Status() Status         { return o.status }
func (o *Order) PaymentStatus() Status  { return o.paymentStatus }
func (o *Order) PaymentMethod() string  { return o.paymentMethod }
func (o *Order) Channel() Channel       { return o.channel }
func (o *Order) Notes() string          { return o.notes }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }

// Business methods

// AssignID records the store-assigned id and raises OrderCreatedEvent.
func (o *Order) AssignID(id string) {
	o.id = id
	o.AddDomainEvent(NewOrderCreatedEvent(o))
}

// ItemsTotal is the sum of the line subtotals.
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// TotalMatchesItems reports whether the declared total equals ItemsTotal.
func (o *Order) TotalMatchesItems() bool {
	return o.total.Equal(o.ItemsTotal())
}
