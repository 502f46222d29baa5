package authservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

const tokenTTL = 24 * time.Hour

func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, fmt.Errorf("%w: user already exists", domain.ErrConflict)
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// Authenticate verifies credentials. Unknown email, wrong password and a
// deactivated account all fail the same way.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil || !user.Active {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Email, string(user.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the administrator account on first start.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return err
	}
	zap.L().Info("admin user created", zap.String("email", email))
	return nil
}
