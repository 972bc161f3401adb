package domain

import (
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories is the category value that disables the breed filter.
const AllCategories = "Todos"

// Resolve finds the product addressed by id. Rules are tried in order and the
// first hit wins:
//  1. an entry whose stored id equals id
//  2. id as a non-negative position smaller than len(entries)
//  3. an entry whose codigo equals id
func Resolve(entries []Entry, id string) (Product, error) {
	if id == "" {
		return Product{}, ErrProductNotFound
	}
	for _, e := range entries {
		if e.StoredID == id {
			return e.Product, nil
		}
	}
	if i, err := strconv.Atoi(id); err == nil && i >= 0 && i < len(entries) {
		return entries[i].Product, nil
	}
	for _, e := range entries {
		if e.Product.Codigo == id {
			return e.Product, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// ListFilter restricts a product listing.
type ListFilter struct {
	// Categoria matches the breed exactly; "" and AllCategories match everything.
	Categoria string
	// SoloDisponibles keeps only products offered in the storefront.
	SoloDisponibles bool
}

// Matches reports whether p passes the filter.
func (f ListFilter) Matches(p Product) bool {
	if f.SoloDisponibles && !p.DisponibleTienda {
		return false
	}
	if f.Categoria != "" && f.Categoria != AllCategories && p.Raza != f.Categoria {
		return false
	}
	return true
}

// Apply returns the products that pass the filter, keeping their order.
func (f ListFilter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortByNombre sorts products by name under Spanish collation, ascending.
// Equal names keep their relative order.
func SortByNombre(products []Product) {
	c := collate.New(language.Spanish)
	slices.SortStableFunc(products, func(a, b Product) int {
		return c.CompareString(a.Nombre, b.Nombre)
	})
}
