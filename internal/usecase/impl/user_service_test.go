package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"costbook/internal/domain/entity"
	"costbook/internal/domain/repository"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo       *MockUserRepository
	passwordHasher *MockPasswordHasher
	tokenService   *MockTokenService
	authorizer     *MockAuthorizer
}

func newTestUserService() (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo:       new(MockUserRepository),
		passwordHasher: new(MockPasswordHasher),
		tokenService:   new(MockTokenService),
		authorizer:     new(MockAuthorizer),
	}

	svc := NewUserService(UserServiceParams{
		UserRepo:       m.userRepo,
		PasswordHasher: m.passwordHasher,
		TokenService:   m.tokenService,
		Authorizer:     m.authorizer,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func TestUserService_Register_CreatesClientAccount(t *testing.T) {
	svc, m := newTestUserService()

	m.passwordHasher.On("Hash", "s3cret-pass").Return("$2a$10$hash", nil)

	var created *entity.User
	m.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).Return(nil)

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.Equal(t, entity.RoleClient, created.Role)
	assert.Equal(t, string(entity.RoleClient), out.Role)
	assert.Equal(t, "amina@example.com", out.Email)
}

func TestUserService_Register_DuplicateEmailConflicts(t *testing.T) {
	svc, m := newTestUserService()

	m.passwordHasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil)
	m.userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "s3cret-pass",
	})

	assertErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_Login_IssuesTokenPair(t *testing.T) {
	svc, m := newTestUserService()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Amina",
		Email:        "amina@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleClient,
	}

	m.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	m.passwordHasher.On("Compare", user.PasswordHash, "s3cret-pass").Return(nil)
	m.tokenService.On("GenerateTokens", user.ID, []string{string(entity.RoleClient)}).
		Return("access-token", "refresh-token", nil)

	out, tokens, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestUserService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	svc, m := newTestUserService()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "amina@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleClient,
	}

	m.userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	m.passwordHasher.On("Compare", user.PasswordHash, "wrong-pass").Return(assert.AnError)

	_, _, errUnknown := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, _, errWrong := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong-pass",
	})

	assertErrorCode(t, errUnknown, "INVALID_CREDENTIALS")
	assertErrorCode(t, errWrong, "INVALID_CREDENTIALS")
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestUserService_GetProfile_ReturnsAuthenticatedAccount(t *testing.T) {
	svc, m := newTestUserService()

	user := &entity.User{
		ID:    uuid.New(),
		Name:  "Amina",
		Email: "amina@example.com",
		Role:  entity.RoleAdmin,
	}

	m.authorizer.On("CurrentPrincipal", mock.Anything).
		Return(&entity.Principal{ID: user.ID, Roles: []string{string(entity.RoleAdmin)}}, nil)
	m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	out, err := svc.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, string(entity.RoleAdmin), out.Role)
}
