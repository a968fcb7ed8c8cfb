package router

import (
	"github.com/labstack/echo/v4"

	"tecnoseguridad/internal/adapter/api/handler"
	"tecnoseguridad/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.Use(authMiddleware.Authenticate)
	products.GET("", productHandler.ListProducts)
	products.GET("/featured", productHandler.ListFeatured)
	products.GET("/:id", productHandler.GetProduct)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.PATCH("/:id/featured", productHandler.ToggleFeatured)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
