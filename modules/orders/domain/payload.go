package domain

import (
	"fmt"

	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// Payload is an order request as submitted by a client.
type Payload struct {
	Cliente *CustomerInput
	// Items is the current field name; Productos is the storefront's older one.
	Items     []ItemInput
	Productos []ItemInput
	// Total is nil when the request carried no number.
	Total      *float64
	MetodoPago string
	Notas      string
}

type CustomerInput struct {
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	RFC       string
}

type ItemInput struct {
	ID       string
	Nombre   string
	Cantidad int
	Precio   float64
}

// LineItems returns Items, or Productos when Items is empty.
func (p Payload) LineItems() []ItemInput {
	if len(p.Items) > 0 {
		return p.Items
	}
	return p.Productos
}

// Validate checks p for the given channel and returns the first failure as
// an apperrors.ValidationError.
func Validate(p Payload, channel Channel) error {
	c := p.Cliente
	if c == nil || c.Nombre == "" || c.Email == "" || c.Telefono == "" {
		return apperrors.NewValidationError("cliente", "Faltan datos del cliente (nombre, email, telefono)")
	}

	items := p.LineItems()
	if len(items) == 0 {
		return apperrors.NewValidationError("items", "El pedido debe tener al menos un producto")
	}
	for i, item := range items {
		if err := validateItem(i, item); err != nil {
			return err
		}
	}

	if p.Total == nil || *p.Total <= 0 {
		return apperrors.NewValidationError("total", "El total del pedido es inválido")
	}

	if channel == ChannelStore && p.MetodoPago == "" {
		return apperrors.NewValidationError("metodoPago", "El método de pago es requerido")
	}
	return nil
}

func validateItem(i int, item ItemInput) error {
	var field string
	switch {
	case item.ID == "":
		field = "id"
	case item.Nombre == "":
		field = "nombre"
	case item.Cantidad <= 0:
		field = "cantidad"
	case item.Precio <= 0:
		field = "precio"
	default:
		return nil
	}
	return apperrors.NewValidationError(
		fmt.Sprintf("items[%d].%s", i, field),
		fmt.Sprintf("El producto %d tiene un valor inválido en %s", i+1, field),
	)
}
