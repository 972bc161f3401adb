// Package commands contains write use cases for the catalog module.
package commands

import (
	"context"

	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// CreateProductCommand carries a product creation request. The catalog is
// maintained outside this service, so the request is validated and refused.
type CreateProductCommand struct {
	Nombre string
	Raza   string
	Precio *float64
}

type CreateProductHandler struct{}

func NewCreateProductHandler() *CreateProductHandler {
	return &CreateProductHandler{}
}

// Handle always fails: with a ValidationError when required fields are
// missing, with a ForbiddenError otherwise.
func (h *CreateProductHandler) Handle(_ context.Context, cmd CreateProductCommand) error {
	if cmd.Nombre == "" || cmd.Raza == "" || cmd.Precio == nil || *cmd.Precio == 0 {
		return apperrors.NewValidationError("", "Faltan campos requeridos: nombre, raza, precio")
	}
	return apperrors.NewForbiddenError("Este endpoint está reservado para uso interno")
}
