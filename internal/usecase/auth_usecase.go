package usecase

import (
	"context"
	"strings"
	"time"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/internal/domain/repository"
	"tecnoseguridad/pkg/errors"
	"tecnoseguridad/pkg/logger"
	"tecnoseguridad/pkg/utils"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	auth     AuthClient
	sessions SessionPublisher
}

func NewAuthUseCase(userRepo repository.UserRepository, auth AuthClient, sessions SessionPublisher) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		auth:     auth,
		sessions: sessions,
	}
}

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

type AuthResult struct {
	User     *entity.User
	Identity *entity.Identity
}

// Register validates the sign-up form, creates the identity and then the
// paired profile document. Validation failures and an in-use email never
// leave a users document behind.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" {
		return nil, errors.BadRequest("Todos los campos son obligatorios", nil)
	}

	if input.Password != input.ConfirmPassword {
		return nil, errors.BadRequest("Las contraseñas no coinciden", nil)
	}

	if ok, message := utils.ValidatePassword(input.Password); !ok {
		return nil, errors.BadRequest(message, nil)
	}

	identity, err := uc.auth.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        identity.UID,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      "user",
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll back the auth account so sign-up stays all-or-nothing.
		if delErr := uc.auth.DeleteUser(ctx, identity.UID); delErr != nil {
			logger.Error("Failed to roll back auth account %s: %v", identity.UID, delErr)
		}
		return nil, errors.Internal("No se pudo crear la cuenta. Inténtalo de nuevo", err)
	}

	uc.sessions.Publish(identity)

	return &AuthResult{
		User:     user,
		Identity: identity,
	}, nil
}

// Login exchanges credentials for an identity and loads the profile.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, errors.BadRequest("Todos los campos son obligatorios", nil)
	}

	identity, err := uc.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, identity.UID)
	if err != nil {
		logger.Error("Signed-in user %s has no profile document: %v", identity.UID, err)
		return nil, errors.NotFound("User", err)
	}

	uc.sessions.Publish(identity)

	return &AuthResult{
		User:     user,
		Identity: identity,
	}, nil
}

// Logout revokes the session and publishes the signed-out state.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.auth.SignOut(ctx, uid); err != nil {
		return err
	}

	uc.sessions.Publish(nil)
	return nil
}
