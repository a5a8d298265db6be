package impl

import (
	"context"
	"log/slog"
	"time"

	"costbook/internal/domain/entity"
	domainerrors "costbook/internal/domain/errors"
	"costbook/internal/domain/repository"
	"costbook/internal/domain/service"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	authorizer     service.Authorizer
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Authorizer     service.Authorizer
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		authorizer:     params.Authorizer,
		logger:         params.Logger,
	}
}

func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return toUserOutput(user), nil
}

// Login verifies credentials and issues a token pair. A missing account and a
// wrong password report the same error, so login failures never confirm
// whether an email is registered.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserOutput, *usecase.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find user")
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate tokens")
	}

	return toUserOutput(user), &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context) (*usecase.UserOutput, error) {
	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, principal.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserOutput(user), nil
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
