package usecase

import (
	"context"
	"io"

	"tecnoseguridad/internal/domain/entity"
)

// AuthClient is the identity provider boundary.
type AuthClient interface {
	SignUp(ctx context.Context, email, password string) (*entity.Identity, error)
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)
	SignOut(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, idToken string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

// MediaUploader is the image hosting boundary. It returns the permanent
// URL of the uploaded bytes; persisting that URL is the caller's job.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}

// SessionPublisher receives sign-in/sign-out transitions. A nil identity
// means signed out.
type SessionPublisher interface {
	Publish(identity *entity.Identity)
}
