package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/chronoluxe/app/models"
	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/services"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
)

func newCatalogue(t *testing.T) (*store.Store, *services.ProductService) {
	t.Helper()

	st := store.New()
	st.InsertProduct(models.Product{ID: "p1", Name: "Rolex Submariner", Brand: "Rolex", Description: "Diving icon", Price: 12800, Stock: 5, Featured: true})
	st.InsertProduct(models.Product{ID: "p2", Name: "Omega Seamaster", Brand: "Omega", Description: "Professional diver", Price: 6200, Stock: 0, Featured: true})
	st.InsertProduct(models.Product{ID: "p3", Name: "IWC Portugieser", Brand: "IWC", Description: "Classic dress watch", Price: 9400, Stock: 6, Featured: false})

	return st, services.NewProductService(st)
}

func TestListFilters(t *testing.T) {
	_, products := newCatalogue(t)

	all := products.List(services.ProductFilters{})
	assert.Len(t, all, 3)

	byBrand := products.List(services.ProductFilters{Brand: "rolex"})
	require.Len(t, byBrand, 1)
	assert.Equal(t, "p1", byBrand[0].ID)

	min := 7000.0
	expensive := products.List(services.ProductFilters{MinPrice: &min})
	assert.Len(t, expensive, 2)

	max := 10000.0
	mid := products.List(services.ProductFilters{MinPrice: &min, MaxPrice: &max})
	require.Len(t, mid, 1)
	assert.Equal(t, "p3", mid[0].ID)

	inStock := true
	sellable := products.List(services.ProductFilters{InStock: &inStock})
	assert.Len(t, sellable, 2)

	featured := true
	promo := products.List(services.ProductFilters{Featured: &featured})
	assert.Len(t, promo, 2)
}

func TestFeatured(t *testing.T) {
	_, products := newCatalogue(t)

	featured := products.Featured()
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestSearch(t *testing.T) {
	_, products := newCatalogue(t)

	// Name, brand, and description are all searched, case-insensitively.
	assert.Len(t, products.Search("submariner"), 1)
	assert.Len(t, products.Search("OMEGA"), 1)
	assert.Len(t, products.Search("diver"), 1)
	assert.Len(t, products.Search("quartz"), 0)
	assert.Len(t, products.Search(""), 3)
}

func TestCreateProductDefaults(t *testing.T) {
	_, products := newCatalogue(t)

	created, err := products.Create(requests.CreateProduct{
		Name:  "Cartier Tank",
		Brand: "Cartier",
		Price: 8900,
		Stock: 4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, "watches", created.Category)
}

func TestCreateProductValidation(t *testing.T) {
	_, products := newCatalogue(t)

	_, err := products.Create(requests.CreateProduct{Name: "X", Price: -5})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateProductPartial(t *testing.T) {
	_, products := newCatalogue(t)

	price := 13500.0
	updated, err := products.Update("p1", requests.UpdateProduct{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 13500.0, updated.Price)
	assert.Equal(t, "Rolex Submariner", updated.Name)
	assert.Equal(t, 5, updated.Stock)
}

func TestUpdateProductUnknown(t *testing.T) {
	_, products := newCatalogue(t)

	price := 1.0
	_, err := products.Update("ghost", requests.UpdateProduct{Price: &price})

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDeleteProduct(t *testing.T) {
	_, products := newCatalogue(t)

	require.NoError(t, products.Delete("p1"))

	_, err := products.Get("p1")
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)

	err = products.Delete("p1")
	require.ErrorAs(t, err, &nf)
}

func TestSeedCatalogue(t *testing.T) {
	st := store.New()

	seeded := store.SeedCatalog(st)
	assert.Equal(t, 8, seeded)

	again := store.SeedCatalog(st)
	assert.Zero(t, again, "seeding a non-empty store is a no-op")

	products := services.NewProductService(st)
	found := products.Search("Submariner")
	require.Len(t, found, 1)
	assert.Equal(t, 12800.0, found[0].Price)
}
