package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/internal/usecase"
	"tecnoseguridad/pkg/errors"
	"tecnoseguridad/pkg/logger"
	"tecnoseguridad/pkg/response"
)

const maxImageSize = 5 * 1024 * 1024

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=2"`
	LastName  string `json:"last_name" validate:"omitempty,min=2"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		ProfileImage: user.ProfileImage,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}

func (h *UserHandler) UpdateProfileImage(c echo.Context) error {
	uid := c.Get("uid").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Falta la imagen", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("La imagen supera el máximo permitido (%dMB)", maxImageSize/(1024*1024)), nil))
	}

	if !isAllowedImageType(file.Header.Get("Content-Type")) {
		return response.Error(c, errors.BadRequest("Formato de imagen no soportado", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	user, err := h.userUseCase.UpdateProfileImage(c.Request().Context(), uid, src, file.Filename)
	if err != nil {
		logger.Error("Profile image upload failed for %s: %v", uid, err)
		return response.Error(c, err)
	}

	return response.Success(c, toUserResponse(user))
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
