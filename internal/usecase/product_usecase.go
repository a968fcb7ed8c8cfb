package usecase

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/internal/domain/repository"
	"tecnoseguridad/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

// ProductInput carries the add/edit form fields as submitted. Price and
// stock arrive as raw strings so format errors are caught here, before
// anything reaches the store.
type ProductInput struct {
	Name     string
	Category string
	Price    string
	Stock    string
	Image    string
}

type parsedProduct struct {
	price float64
	stock int
}

// validate applies the form rules in order, short-circuiting on the first
// failure: all fields present, image is a well-formed URL, price and stock
// are numbers.
func (in *ProductInput) validate() (*parsedProduct, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Price) == "" ||
		strings.TrimSpace(in.Stock) == "" ||
		strings.TrimSpace(in.Image) == "" {
		return nil, errors.BadRequest("Todos los campos son obligatorios", nil)
	}

	parsed, err := url.ParseRequestURI(in.Image)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.BadRequest("La imagen debe ser una URL válida", nil)
	}

	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, errors.BadRequest("El precio debe ser un número válido", nil)
	}
	if price < 0 {
		return nil, errors.BadRequest("El precio no puede ser negativo", nil)
	}

	stock, err := strconv.Atoi(in.Stock)
	if err != nil {
		return nil, errors.BadRequest("El stock debe ser un número entero", nil)
	}
	if stock < 0 {
		return nil, errors.BadRequest("El stock no puede ser negativo", nil)
	}

	return &parsedProduct{price: price, stock: stock}, nil
}

// FilterProducts returns the subset whose name or category contains the
// query as a case-insensitive substring. An empty query returns the list
// unchanged.
func FilterProducts(products []*entity.Product, query string) []*entity.Product {
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// ListProducts fetches the full catalog and applies the search query.
func (uc *ProductUseCase) ListProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return FilterProducts(products, query), nil
}

// ListFeatured returns the products flagged for the home screen rail.
func (uc *ProductUseCase) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}

	return featured, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// CreateProduct is the add branch of the form. Nothing is written unless
// every field validates.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	parsed, err := input.validate()
	if err != nil {
		return nil, err
	}

	stock := parsed.stock
	product := &entity.Product{
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
		Price:    parsed.price,
		Stock:    &stock,
		Image:    input.Image,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct is the edit branch: same validation, then a merge that
// touches only the form fields. createdAt and isFeatured stay as stored.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	parsed, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":     strings.TrimSpace(input.Name),
		"category": strings.TrimSpace(input.Category),
		"price":    parsed.price,
		"stock":    parsed.stock,
		"image":    input.Image,
	}
	if err := uc.productRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return uc.productRepo.GetByID(ctx, id)
}

// ToggleFeatured flips the flag with a partial update that touches
// nothing else.
func (uc *ProductUseCase) ToggleFeatured(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.UpdateFields(ctx, id, map[string]interface{}{
		"isFeatured": !product.IsFeatured,
	}); err != nil {
		return nil, err
	}

	product.IsFeatured = !product.IsFeatured
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}
