package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tecnoseguridad/internal/domain/entity"
	"tecnoseguridad/pkg/errors"
)

type fakeAuthClient struct {
	emailInUse  bool
	signUpCalls int
	deleted     []string
	signedOut   []string
}

func (f *fakeAuthClient) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	f.signUpCalls++
	if f.emailInUse {
		return nil, errors.Conflict("EMAIL_IN_USE", "El correo electrónico ya está registrado", nil)
	}
	return &entity.Identity{UID: "uid-1", Email: email, IDToken: "token", RefreshToken: "refresh"}, nil
}

func (f *fakeAuthClient) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	if password != "Abc12345" {
		return nil, errors.Unauthorized("Correo o contraseña incorrectos", nil)
	}
	return &entity.Identity{UID: "uid-1", Email: email, IDToken: "token", RefreshToken: "refresh"}, nil
}

func (f *fakeAuthClient) SignOut(ctx context.Context, uid string) error {
	f.signedOut = append(f.signedOut, uid)
	return nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	return "uid-1", nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeUserRepo struct {
	users       map[string]*entity.User
	createCalls int
	updateCalls []map[string]interface{}
	failCreate  bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.createCalls++
	if f.failCreate {
		return errors.Internal("Failed to create user record", nil)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	f.updateCalls = append(f.updateCalls, fields)
	user, ok := f.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	if v, ok := fields["firstName"].(string); ok {
		user.FirstName = v
	}
	if v, ok := fields["lastName"].(string); ok {
		user.LastName = v
	}
	if v, ok := fields["profileImage"].(string); ok {
		user.ProfileImage = v
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeSessions struct {
	published []*entity.Identity
}

func (f *fakeSessions) Publish(identity *entity.Identity) {
	f.published = append(f.published, identity)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:           "ana@example.com",
		Password:        "Abc12345",
		ConfirmPassword: "Abc12345",
		FirstName:       "Ana",
		LastName:        "Pérez",
	}
}

func TestRegisterRejectsWeakPasswords(t *testing.T) {
	cases := []string{
		"abc12345", // no uppercase
		"ABC12345", // no lowercase
		"Abcdefgh", // no digit
		"Ab1",      // too short
	}

	for _, password := range cases {
		auth := &fakeAuthClient{}
		repo := newFakeUserRepo()
		uc := NewAuthUseCase(repo, auth, &fakeSessions{})

		input := validRegisterInput()
		input.Password = password
		input.ConfirmPassword = password

		_, err := uc.Register(context.Background(), input)
		require.Error(t, err, "password %q must be rejected", password)
		assert.Zero(t, auth.signUpCalls, "provider must not be called for %q", password)
		assert.Zero(t, repo.createCalls)
	}
}

func TestRegisterAcceptsCompliantPassword(t *testing.T) {
	auth := &fakeAuthClient{}
	repo := newFakeUserRepo()
	sessions := &fakeSessions{}
	uc := NewAuthUseCase(repo, auth, sessions)

	result, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.Equal(t, "user", result.User.Role)
	assert.False(t, result.User.CreatedAt.IsZero())

	require.Len(t, sessions.published, 1)
	assert.Equal(t, "uid-1", sessions.published[0].UID)
}

func TestRegisterRejectsMismatchedConfirmation(t *testing.T) {
	auth := &fakeAuthClient{}
	uc := NewAuthUseCase(newFakeUserRepo(), auth, &fakeSessions{})

	input := validRegisterInput()
	input.ConfirmPassword = "Abc12346"

	_, err := uc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Zero(t, auth.signUpCalls)
}

func TestRegisterEmailInUseWritesNoDocument(t *testing.T) {
	auth := &fakeAuthClient{emailInUse: true}
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, auth, &fakeSessions{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "EMAIL_IN_USE"))
	assert.Zero(t, repo.createCalls, "no users document may be created")
}

func TestRegisterRollsBackAuthAccountOnProfileFailure(t *testing.T) {
	auth := &fakeAuthClient{}
	repo := newFakeUserRepo()
	repo.failCreate = true
	uc := NewAuthUseCase(repo, auth, &fakeSessions{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.Error(t, err)
	assert.Equal(t, []string{"uid-1"}, auth.deleted)
}

func TestLoginPublishesSession(t *testing.T) {
	auth := &fakeAuthClient{}
	repo := newFakeUserRepo()
	repo.users["uid-1"] = &entity.User{ID: "uid-1", Email: "ana@example.com", FirstName: "Ana"}
	sessions := &fakeSessions{}
	uc := NewAuthUseCase(repo, auth, sessions)

	result, err := uc.Login(context.Background(), "ana@example.com", "Abc12345")
	require.NoError(t, err)
	assert.Equal(t, "Ana", result.User.FirstName)
	require.Len(t, sessions.published, 1)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth := &fakeAuthClient{}
	sessions := &fakeSessions{}
	uc := NewAuthUseCase(newFakeUserRepo(), auth, sessions)

	_, err := uc.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Empty(t, sessions.published)
}

func TestLogoutPublishesSignedOut(t *testing.T) {
	auth := &fakeAuthClient{}
	sessions := &fakeSessions{}
	uc := NewAuthUseCase(newFakeUserRepo(), auth, sessions)

	require.NoError(t, uc.Logout(context.Background(), "uid-1"))
	assert.Equal(t, []string{"uid-1"}, auth.signedOut)
	require.Len(t, sessions.published, 1)
	assert.Nil(t, sessions.published[0])
}
