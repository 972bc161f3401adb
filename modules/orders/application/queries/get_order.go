// Package queries contains read use cases for the orders module.
package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// OrderDTO is a read model for order data. Line items are exposed under both
// of their historical field names.
type OrderDTO struct {
	ID                 string         `json:"id"`
	Cliente            ClienteDTO     `json:"cliente"`
	Items              []OrderItemDTO `json:"items"`
	Productos          []OrderItemDTO `json:"productos"`
	Total              float64        `json:"total"`
	Estado             string         `json:"estado"`
	EstadoPago         string         `json:"estadoPago"`
	MetodoPago         string         `json:"metodoPago"`
	Origen             string         `json:"origen"`
	Notas              string         `json:"notas"`
	FechaCreacion      time.Time      `json:"fechaCreacion"`
	Fecha              string         `json:"fecha"`
	FechaActualizacion time.Time      `json:"fechaActualizacion"`
}

type ClienteDTO struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	RFC       string `json:"rfc"`
}

type OrderItemDTO struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Cantidad int     `json:"cantidad"`
	Precio   float64 `json:"precio"`
	Subtotal float64 `json:"subtotal"`
}

// GetOrderQuery retrieves an order by ID.
type GetOrderQuery struct {
	OrderID string
}

type GetOrderHandler struct {
	repo domain.OrderRepository
}

func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

func (h *GetOrderHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderDTO, error) {
	if query.OrderID == "" {
		return nil, apperrors.NewValidationError("id", "ID de pedido requerido")
	}

	order, err := h.repo.FindByID(ctx, query.OrderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return nil, apperrors.NewNotFoundError("Pedido", query.OrderID, domain.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting order %s: %w", query.OrderID, err)
	}

	return ToOrderDTO(order), nil
}

// ToOrderDTO maps an order to its read model.
func ToOrderDTO(order *domain.Order) *OrderDTO {
	items := make([]OrderItemDTO, len(order.Items()))
	for i, item := range order.Items() {
		items[i] = OrderItemDTO{
			ID:       item.ProductID,
			Nombre:   item.Nombre,
			Cantidad: item.Cantidad,
			Precio:   item.Precio.InexactFloat64(),
			Subtotal: item.Subtotal().InexactFloat64(),
		}
	}

	c := order.Customer()
	return &OrderDTO{
		ID: order.ID(),
		Cliente: ClienteDTO{
			Nombre:    c.Nombre,
			Email:     c.Email,
			Telefono:  c.Telefono,
			Direccion: c.Direccion,
			RFC:       c.RFC,
		},
		Items:              items,
		Productos:          items,
		Total:              order.Total().InexactFloat64(),
		Estado:             order.Status().String(),
		EstadoPago:         order.PaymentStatus().String(),
		MetodoPago:         order.PaymentMethod(),
		Origen:             order.Channel().String(),
		Notas:              order.Notes(),
		FechaCreacion:      order.CreatedAt(),
		Fecha:              order.CreatedAt().Format(domain.LegacyTimeLayout),
		FechaActualizacion: order.UpdatedAt(),
	}
}
