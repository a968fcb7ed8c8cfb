package router

import (
	"github.com/labstack/echo/v4"

	"tecnoseguridad/internal/adapter/api/handler"
	"tecnoseguridad/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("", userHandler.GetProfile)
	profile.PATCH("", userHandler.UpdateProfile)
	profile.PUT("/image", userHandler.UpdateProfileImage)
}
