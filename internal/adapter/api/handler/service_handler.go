package handler

import (
	"github.com/labstack/echo/v4"

	"tecnoseguridad/internal/usecase"
	"tecnoseguridad/pkg/response"
)

type ServiceHandler struct {
	serviceUseCase *usecase.ServiceUseCase
}

func NewServiceHandler(serviceUseCase *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
	}
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	return response.Success(c, h.serviceUseCase.ListServices())
}
