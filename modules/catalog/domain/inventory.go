package domain

import "math"

// InventoryItem is the stock view of a product in the inventario collection.
type InventoryItem struct {
	ID         string  `json:"id"`
	Nombre     string  `json:"nombre"`
	Categoria  string  `json:"categoria"`
	Dosis      int     `json:"dosis"`
	Precio     float64 `json:"precio"`
	Disponible bool    `json:"disponible"`
}

// Summary aggregates a list of inventory items.
type Summary struct {
	TotalProductos       int `json:"total_productos"`
	ProductosDisponibles int `json:"productos_disponibles"`
	TotalDosis           int `json:"total_dosis"`
}

// NormalizeInventory projects an inventario document onto InventoryItem.
// Disponible is derived from Dosis > 0.
func NormalizeInventory(id string, raw RawRecord) InventoryItem {
	dosis := int(math.Max(math.Floor(raw.num("dosis")), 0))
	return InventoryItem{
		ID:         id,
		Nombre:     raw.str("nombre"),
		Categoria:  raw.str("categoria", "raza"),
		Dosis:      dosis,
		Precio:     math.Max(raw.num("precio", "precioVenta"), 0),
		Disponible: dosis > 0,
	}
}

// Summarize counts items, available items and total doses.
func Summarize(items []InventoryItem) Summary {
	var s Summary
	for _, item := range items {
		s.TotalProductos++
		if item.Disponible {
			s.ProductosDisponibles++
		}
		s.TotalDosis += item.Dosis
	}
	return s
}
