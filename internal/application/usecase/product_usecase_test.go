package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/application/usecase"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/records"
)

var ctx = context.Background()

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	products := records.NewProductRepository(memstore.New())
	for _, p := range []*entity.Product{
		{ID: "1", Name: "Cepillo de bambú", Price: decimal.RequireFromString("24.99"), Category: "personal-care", EcoRating: 5, Tags: []string{"bamboo", "biodegradable"}},
		{ID: "2", Name: "Bolsa de algodón", Price: decimal.RequireFromString("18.99"), Category: "accessories", EcoRating: 4, Tags: []string{"organic"}},
		{ID: "3", Name: "Power bank solar", Price: decimal.RequireFromString("45.99"), Category: "electronics", EcoRating: 5, Description: "Carga con energía solar"},
	} {
		_, err := products.Upsert(ctx, p)
		require.NoError(t, err)
	}
	return usecase.NewProductUseCase(products)
}

func ids(list *dto.ProductListResponse) []string {
	out := make([]string, 0, len(list.Items))
	for _, p := range list.Items {
		out = append(out, p.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado con filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_SinFiltro_OrdenaPorNombre(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, ids(out), "default: alfabético por nombre")
	assert.Equal(t, 3, out.Total)
}

func TestProductList_BuscaEnNombreDescripcionYTags(t *testing.T) {
	uc := newProductUC(t)

	porNombre, err := uc.List(ctx, dto.ProductFilter{Search: "bolsa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(porNombre))

	porDescripcion, err := uc.List(ctx, dto.ProductFilter{Search: "energía"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(porDescripcion))

	porTag, err := uc.List(ctx, dto.ProductFilter{Search: "biodegradable"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(porTag))
}

func TestProductList_FiltraPorCategoria(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.List(ctx, dto.ProductFilter{Category: "electronics"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(out))

	todos, err := uc.List(ctx, dto.ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, 3, todos.Total, `la categoría "all" no filtra`)
}

func TestProductList_FiltraPorRangoDePrecio(t *testing.T) {
	uc := newProductUC(t)

	min := decimal.RequireFromString("20")
	max := decimal.RequireFromString("30")
	out, err := uc.List(ctx, dto.ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(out))
}

func TestProductList_FiltraPorEcoRating(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.List(ctx, dto.ProductFilter{MinEco: 5})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3"}, ids(out))
}

func TestProductList_OrdenPorPrecio(t *testing.T) {
	uc := newProductUC(t)

	asc, err := uc.List(ctx, dto.ProductFilter{SortBy: "price-asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, ids(asc))

	desc, err := uc.List(ctx, dto.ProductFilter{SortBy: "price-desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, ids(desc))
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AsignaIDYDefaults(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Name:      "Jabón artesanal",
		Price:     decimal.RequireFromString("9.99"),
		Category:  "personal-care",
		EcoRating: 4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.InStock, "un producto nuevo arranca en stock")
	assert.NotEmpty(t, out.CreatedAt)
}

func TestProductUpdate_PatchParcial(t *testing.T) {
	uc := newProductUC(t)

	precio := decimal.RequireFromString("21.50")
	out, err := uc.Update(ctx, "1", dto.UpdateProductRequest{Price: &precio})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Price.Equal(precio))
	assert.Equal(t, "Cepillo de bambú", out.Name, "los campos ausentes no se tocan")
}

func TestProductUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := newProductUC(t)

	nombre := "X"
	out, err := uc.Update(ctx, "fantasma", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_ReportaSiExistia(t *testing.T) {
	uc := newProductUC(t)

	removed, err := uc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)
}
