package domain

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
)
