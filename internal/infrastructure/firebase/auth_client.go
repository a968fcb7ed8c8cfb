package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/pkg/errors"
	"tecnoseguridad/pkg/logger"
)

type FirebaseAuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// restEndpoint builds the identitytoolkit URL for an accounts action,
// honoring FIREBASE_AUTH_EMULATOR_HOST when set.
func (f *FirebaseAuthClient) restEndpoint(action string) string {
	if host := os.Getenv("FIREBASE_AUTH_EMULATOR_HOST"); host != "" {
		return fmt.Sprintf("http://%s/identitytoolkit.googleapis.com/v1/accounts:%s?key=%s", host, action, f.apiKey)
	}
	return fmt.Sprintf("https://identitytoolkit.googleapis.com/v1/accounts:%s?key=%s", action, f.apiKey)
}

type accountsResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (f *FirebaseAuthClient) accountsCall(ctx context.Context, action, email, password string) (*accountsResponse, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.restEndpoint(action), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("NETWORK_ERROR", "No se pudo conectar con el servidor. Verifica tu conexión", http.StatusServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var result accountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Internal("Failed to decode identity provider response", err)
	}

	if resp.StatusCode >= 400 {
		code := ""
		if result.Error != nil {
			code = result.Error.Message
		}
		return nil, mapProviderError(code)
	}

	return &result, nil
}

// mapProviderError translates known identitytoolkit error codes into
// user-facing messages; anything unrecognized falls back to a generic one.
func mapProviderError(code string) *errors.AppError {
	// Codes can arrive with a trailing detail, e.g. "WEAK_PASSWORD : ...".
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		code = code[:idx]
	}

	switch code {
	case "EMAIL_EXISTS":
		return errors.Conflict("EMAIL_IN_USE", "El correo electrónico ya está registrado", nil)
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return errors.BadRequest("El correo electrónico no es válido", nil)
	case "INVALID_LOGIN_CREDENTIALS", "EMAIL_NOT_FOUND", "INVALID_PASSWORD":
		return errors.Unauthorized("Correo o contraseña incorrectos", nil)
	case "USER_DISABLED":
		return errors.Forbidden("La cuenta ha sido deshabilitada", nil)
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return errors.Unauthorized("Demasiados intentos. Inténtalo más tarde", nil)
	default:
		logger.Warn("Unmapped identity provider error code: %q", code)
		return errors.Internal("Ocurrió un error. Inténtalo de nuevo", nil)
	}
}

// SignUp creates a new email/password account and returns the signed-in
// identity.
func (f *FirebaseAuthClient) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	result, err := f.accountsCall(ctx, "signUp", email, password)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UID:          result.LocalID,
		Email:        result.Email,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
	}, nil
}

// SignIn exchanges email/password credentials for an identity.
func (f *FirebaseAuthClient) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	result, err := f.accountsCall(ctx, "signInWithPassword", email, password)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UID:          result.LocalID,
		Email:        result.Email,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
	}, nil
}

// SignOut revokes the user's refresh tokens, invalidating the session.
func (f *FirebaseAuthClient) SignOut(ctx context.Context, uid string) error {
	if err := f.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Internal("Failed to revoke session", err)
	}
	return nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// DeleteUser removes the auth account. Used to roll back sign-up when the
// profile document cannot be written.
func (f *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}
