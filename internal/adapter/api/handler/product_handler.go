package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/internal/usecase"
	"tecnoseguridad/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// productFormRequest mirrors the admin add/edit form: price and stock come
// through as the raw strings the form submitted, validated in the use case.
type productFormRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    string `json:"stock"`
	Image    string `json:"image"`
}

type productResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	Stock      *int      `json:"stock"`
	StockLabel string    `json:"stock_label"`
	Image      string    `json:"image"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

func toProductResponse(p *entity.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Stock:      p.Stock,
		StockLabel: p.StockLabel(),
		Image:      p.Image,
		IsFeatured: p.IsFeatured,
		CreatedAt:  p.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func (r *productFormRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Stock:    r.Stock,
		Image:    r.Image,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	query := c.QueryParam("q")

	products, err := h.productUseCase.ListProducts(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponses(products))
}

func (h *ProductHandler) ListFeatured(c echo.Context) error {
	products, err := h.productUseCase.ListFeatured(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponses(products))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponse(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productFormRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, toProductResponse(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productFormRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponse(product))
}

func (h *ProductHandler) ToggleFeatured(c echo.Context) error {
	product, err := h.productUseCase.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Producto eliminado",
	})
}
