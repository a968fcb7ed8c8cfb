package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/pkg/errors"
)

type fakeProductRepo struct {
	products []*entity.Product

	createCalls []*entity.Product
	updateCalls []map[string]interface{}
	deleteCalls []string

	failList bool
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = "generated-id"
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	f.createCalls = append(f.createCalls, product)
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	if f.failList {
		return nil, errors.Internal("Failed to iterate products", nil)
	}
	return f.products, nil
}

func (f *fakeProductRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	f.updateCalls = append(f.updateCalls, fields)
	for _, p := range f.products {
		if p.ID != id {
			continue
		}
		if v, ok := fields["isFeatured"].(bool); ok {
			p.IsFeatured = v
		}
		if v, ok := fields["name"].(string); ok {
			p.Name = v
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

func intPtr(n int) *int {
	return &n
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Cámara IP Exterior", Category: "Seguridad", Price: 25000, Stock: intPtr(4), Image: "https://img/cam.png"},
		{ID: "2", Name: "Sensor de movimiento", Category: "Alarmas", Price: 8000, Stock: intPtr(10), Image: "https://img/sensor.png"},
		{ID: "3", Name: "Kit DVR 8 canales", Category: "Seguridad", Price: 98000, Stock: intPtr(1), Image: "https://img/dvr.png", IsFeatured: true},
	}
}

func TestFilterProductsEmptyQueryReturnsAll(t *testing.T) {
	products := sampleProducts()
	assert.Equal(t, products, FilterProducts(products, ""))
}

func TestFilterProductsMatchesNameCaseInsensitive(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "cámara")
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterProductsMatchesCategory(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "SEGURIDAD")
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)
}

func TestFilterProductsNoMatch(t *testing.T) {
	assert.Empty(t, FilterProducts(sampleProducts(), "drone"))
}

func TestListProductsAppliesQuery(t *testing.T) {
	repo := &fakeProductRepo{products: sampleProducts()}
	uc := NewProductUseCase(repo)

	products, err := uc.ListProducts(context.Background(), "sensor")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)
}

func TestListFeatured(t *testing.T) {
	repo := &fakeProductRepo{products: sampleProducts()}
	uc := NewProductUseCase(repo)

	products, err := uc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "3", products[0].ID)
}

func validInput() ProductInput {
	return ProductInput{
		Name:     "Cámara X",
		Category: "Seguridad",
		Price:    "15000",
		Stock:    "5",
		Image:    "https://x/y.png",
	}
}

func TestCreateProductRejectsEmptyFields(t *testing.T) {
	fields := []func(*ProductInput){
		func(in *ProductInput) { in.Name = "" },
		func(in *ProductInput) { in.Category = "" },
		func(in *ProductInput) { in.Price = "" },
		func(in *ProductInput) { in.Stock = "" },
		func(in *ProductInput) { in.Image = "" },
	}

	for _, clear := range fields {
		repo := &fakeProductRepo{}
		uc := NewProductUseCase(repo)

		input := validInput()
		clear(&input)

		_, err := uc.CreateProduct(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
		assert.Empty(t, repo.createCalls, "no write may happen on validation failure")
	}
}

func TestCreateProductRejectsMalformedImageURL(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo)

	input := validInput()
	input.Image = "not a url"

	_, err := uc.CreateProduct(context.Background(), input)
	require.Error(t, err)
	assert.Empty(t, repo.createCalls)
}

func TestCreateProductRejectsNonNumericPriceAndStock(t *testing.T) {
	cases := []ProductInput{}

	badPrice := validInput()
	badPrice.Price = "abc"
	cases = append(cases, badPrice)

	badStock := validInput()
	badStock.Stock = "abc"
	cases = append(cases, badStock)

	for _, input := range cases {
		repo := &fakeProductRepo{}
		uc := NewProductUseCase(repo)

		_, err := uc.CreateProduct(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
		assert.Empty(t, repo.createCalls)
	}
}

func TestCreateProductRejectsNonFinitePrice(t *testing.T) {
	for _, price := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		repo := &fakeProductRepo{}
		uc := NewProductUseCase(repo)

		input := validInput()
		input.Price = price

		_, err := uc.CreateProduct(context.Background(), input)
		require.Error(t, err, "price %q", price)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
		assert.Empty(t, repo.createCalls)
	}
}

func TestCreateProductAcceptsDecimalPriceAndIntegerStock(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo)

	input := validInput()
	input.Price = "10.5"
	input.Stock = "3"

	product, err := uc.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 10.5, product.Price)
	require.NotNil(t, product.Stock)
	assert.Equal(t, 3, *product.Stock)
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo)

	input := validInput()
	input.Price = "-1"
	_, err := uc.CreateProduct(context.Background(), input)
	require.Error(t, err)

	input = validInput()
	input.Stock = "-3"
	_, err = uc.CreateProduct(context.Background(), input)
	require.Error(t, err)

	assert.Empty(t, repo.createCalls)
}

func TestCreateProductPersistsAllFields(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo)

	product, err := uc.CreateProduct(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Cámara X", product.Name)
	assert.Equal(t, "Seguridad", product.Category)
	assert.Equal(t, float64(15000), product.Price)
	require.NotNil(t, product.Stock)
	assert.Equal(t, 5, *product.Stock)
	assert.Equal(t, "https://x/y.png", product.Image)
	assert.False(t, product.IsFeatured)

	// The next full fetch includes it.
	listed, err := uc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, product.ID, listed[0].ID)
}

func TestUpdateProductMergesFormFieldsOnly(t *testing.T) {
	repo := &fakeProductRepo{products: sampleProducts()}
	uc := NewProductUseCase(repo)

	input := validInput()
	_, err := uc.UpdateProduct(context.Background(), "1", input)
	require.NoError(t, err)

	require.Len(t, repo.updateCalls, 1)
	fields := repo.updateCalls[0]
	assert.Equal(t, map[string]interface{}{
		"name":     "Cámara X",
		"category": "Seguridad",
		"price":    float64(15000),
		"stock":    5,
		"image":    "https://x/y.png",
	}, fields)
	assert.NotContains(t, fields, "isFeatured")
	assert.NotContains(t, fields, "createdAt")
}

func TestUpdateProductUnknownID(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo)

	_, err := uc.UpdateProduct(context.Background(), "missing", validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Empty(t, repo.updateCalls)
}

func TestToggleFeaturedIssuesSinglePartialUpdate(t *testing.T) {
	repo := &fakeProductRepo{products: sampleProducts()}
	uc := NewProductUseCase(repo)

	product, err := uc.ToggleFeatured(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, product.IsFeatured)

	require.Len(t, repo.updateCalls, 1)
	assert.Equal(t, map[string]interface{}{"isFeatured": true}, repo.updateCalls[0])

	// The next fetch reflects the flip.
	listed, err := uc.ListFeatured(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(listed))
	for _, p := range listed {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "1")
}

func TestToggleFeaturedBackOff(t *testing.T) {
	repo := &fakeProductRepo{products: sampleProducts()}
	uc := NewProductUseCase(repo)

	product, err := uc.ToggleFeatured(context.Background(), "3")
	require.NoError(t, err)
	assert.False(t, product.IsFeatured)
	require.Len(t, repo.updateCalls, 1)
	assert.Equal(t, map[string]interface{}{"isFeatured": false}, repo.updateCalls[0])
}

func TestDeleteProduct(t *testing.T) {
	repo := &fakeProductRepo{products: sampleProducts()}
	uc := NewProductUseCase(repo)

	require.NoError(t, uc.DeleteProduct(context.Background(), "2"))
	assert.Equal(t, []string{"2"}, repo.deleteCalls)

	err := uc.DeleteProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Len(t, repo.deleteCalls, 1)
}
