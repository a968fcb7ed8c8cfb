package router

import (
	"github.com/labstack/echo/v4"

	"tecnoseguridad/internal/adapter/api/handler"
)

func SetupServiceRouter(e *echo.Echo) {
	serviceHandler := handler.GetServiceHandler()

	e.GET("/v1/services", serviceHandler.ListServices)
}
