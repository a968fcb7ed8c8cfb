package usecase

import (
	"context"
	"io"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/internal/domain/repository"
	"tecnoseguridad/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	uploader MediaUploader
}

func NewUserUseCase(userRepo repository.UserRepository, uploader MediaUploader) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		uploader: uploader,
	}
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile merges the supplied name fields into the user document.
// Email is immutable through this surface; fields left empty are not
// touched.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	fields := make(map[string]interface{})
	if input.FirstName != "" {
		fields["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		fields["lastName"] = input.LastName
	}

	if len(fields) == 0 {
		return nil, errors.BadRequest("No hay cambios para guardar", nil)
	}

	if err := uc.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfileImage uploads the image bytes to the media host and, only
// after a successful upload, persists the returned URL. An upload failure
// leaves the document untouched.
func (uc *UserUseCase) UpdateProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (*entity.User, error) {
	url, err := uc.uploader.Upload(ctx, file, filename, "profiles")
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateFields(ctx, userID, map[string]interface{}{
		"profileImage": url,
	}); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, userID)
}
