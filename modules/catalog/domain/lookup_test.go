package domain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
)

func entry(storedID, codigo, nombre string) domain.Entry {
	id := storedID
	return domain.Entry{StoredID: storedID, Product: domain.Product{ID: id, Codigo: codigo, Nombre: nombre}}
}

func TestResolve_StoredIDWinsOverIndexAndCode(t *testing.T) {
	entries := []domain.Entry{
		entry("x", "A", "by-code"),
		entry("y", "", "one"),
		entry("A", "", "by-id"),
	}

	got, err := domain.Resolve(entries, "A")
	require.NoError(t, err)
	assert.Equal(t, "by-id", got.Nombre)
}

func TestResolve_PositionalFallback(t *testing.T) {
	entries := []domain.Entry{
		entry("a", "c-a", "zero"),
		entry("b", "c-b", "one"),
		entry("c", "c-c", "two"),
		entry("d", "c-d", "three"),
		entry("e", "c-e", "four"),
	}

	got, err := domain.Resolve(entries, "2")
	require.NoError(t, err)
	assert.Equal(t, "two", got.Nombre)
}

func TestResolve_IndexBeforeCode(t *testing.T) {
	entries := []domain.Entry{
		entry("a", "1", "code-one"),
		entry("b", "", "index-one"),
	}

	got, err := domain.Resolve(entries, "1")
	require.NoError(t, err)
	assert.Equal(t, "index-one", got.Nombre)
}

func TestResolve_CodeFallback(t *testing.T) {
	entries := []domain.Entry{entry("a", "ZE-01", "Zeus"), entry("b", "BR-02", "Bravo")}

	got, err := domain.Resolve(entries, "BR-02")
	require.NoError(t, err)
	assert.Equal(t, "Bravo", got.Nombre)
}

func TestResolve_NotFound(t *testing.T) {
	entries := []domain.Entry{entry("a", "c", "n")}

	for _, id := range []string{"", "zz", "1", "-1", "01x"} {
		_, err := domain.Resolve(entries, id)
		assert.ErrorIs(t, err, domain.ErrProductNotFound, "id %q", id)
	}
}

func TestListFilter_TodosIsNoOp(t *testing.T) {
	products := []domain.Product{
		{Nombre: "A", Raza: "Angus"},
		{Nombre: "B", Raza: "Brahman", DisponibleTienda: true},
	}

	assert.Equal(t, domain.ListFilter{}.Apply(products), domain.ListFilter{Categoria: "Todos"}.Apply(products))
	assert.Len(t, domain.ListFilter{Categoria: "Todos"}.Apply(products), 2)
}

func TestListFilter_CategoriaAndDisponible(t *testing.T) {
	products := []domain.Product{
		{Nombre: "A", Raza: "Angus", DisponibleTienda: true},
		{Nombre: "B", Raza: "Angus"},
		{Nombre: "C", Raza: "Brahman", DisponibleTienda: true},
	}

	got := domain.ListFilter{Categoria: "Angus", SoloDisponibles: true}.Apply(products)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Nombre)

	assert.Len(t, domain.ListFilter{Categoria: "Angus"}.Apply(products), 2)
	assert.Len(t, domain.ListFilter{SoloDisponibles: true}.Apply(products), 2)
}

func TestSortByNombre_SpanishCollation(t *testing.T) {
	want := []string{"ángel", "Bravo", "Nube", "Ñandú", "Zeus"}

	for i := 0; i < 10; i++ {
		products := make([]domain.Product, len(want))
		for j, k := range rand.Perm(len(want)) {
			products[j] = domain.Product{Nombre: want[k]}
		}

		domain.SortByNombre(products)
		assert.Equal(t, want, names(products))

		domain.SortByNombre(products)
		assert.Equal(t, want, names(products), "sorting a sorted list is a no-op")
	}
}

func names(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Nombre
	}
	return out
}
