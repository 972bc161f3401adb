package domain

import (
	"math"
	"strconv"
)

// field names per variant, primary first
var (
	collectionPrice = []string{"precio", "precioVenta"}
	aggregatePrice  = []string{"precioVenta", "precio"}
	collectionImage = []string{"imagenUrl", "fotoUrl"}
	aggregateImage  = []string{"fotoUrl", "imagenUrl"}
	breed           = []string{"raza", "categoria"}
)

// Normalize projects raw onto Product. Absent, falsy or wrongly typed values
// resolve to "", 0 or false; negative prices resolve to 0.
// ID is the record's own id field; sources replace it with the store id or
// the positional index where applicable.
func Normalize(raw RawRecord, variant SchemaVariant) Product {
	price, image := collectionPrice, collectionImage
	if variant == VariantAggregate {
		price, image = aggregatePrice, aggregateImage
	}

	raza := raw.str(breed...)
	return Product{
		ID:               raw.ID(),
		Nombre:           raw.str("nombre"),
		Codigo:           raw.str("codigo"),
		Raza:             raza,
		Categoria:        raza,
		Precio:           math.Max(raw.num(price...), 0),
		Descripcion:      raw.str("descripcion"),
		ImagenURL:        raw.str(image...),
		VideoURL:         raw.str("videoUrl"),
		DisponibleTienda: raw.flag("disponibleTienda"),
		Activo:           raw.flag("activo"),
	}
}

// ID returns the record's own id field. Integral numeric ids are rendered in base 10.
func (r RawRecord) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// str returns the first non-empty string among keys.
func (r RawRecord) str(keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// num returns the first non-zero number among keys.
func (r RawRecord) num(keys ...string) float64 {
	for _, k := range keys {
		if n, ok := number(r[k]); ok && n != 0 {
			return n
		}
	}
	return 0
}

func (r RawRecord) flag(key string) bool {
	b, _ := r[key].(bool)
	return b
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
