// Package domain contains the catalog entities and the rules that turn stored
// records into them.
package domain

// Product is the API-facing shape of a catalog entry (one sire's semen doses).
// Categoria and Raza carry the same breed value.
type Product struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Codigo           string  `json:"codigo"`
	Raza             string  `json:"raza"`
	Categoria        string  `json:"categoria"`
	Precio           float64 `json:"precio"`
	Descripcion      string  `json:"descripcion"`
	ImagenURL        string  `json:"imagenUrl"`
	VideoURL         string  `json:"videoUrl"`
	DisponibleTienda bool    `json:"disponibleTienda"`
	Activo           bool    `json:"activo"`
}

// RawRecord is a stored record as decoded by the document store.
type RawRecord map[string]any

// SchemaVariant names the storage layout a RawRecord comes from.
type SchemaVariant int

const (
	// VariantCollection is a flat document in a products collection.
	VariantCollection SchemaVariant = iota
	// VariantAggregate is an entry of the array held by a single aggregate document.
	VariantAggregate
)

func (v SchemaVariant) String() string {
	switch v {
	case VariantCollection:
		return "collection"
	case VariantAggregate:
		return "aggregate"
	}
	return "unknown"
}

// Entry pairs a normalized product with the identifier stored on the record
// itself, which is empty for array entries that carry no id.
type Entry struct {
	StoredID string
	Product  Product
}
