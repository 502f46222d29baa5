package adminservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
)

type Repo interface {
	List(ctx context.Context) ([]domain.User, error)
	ToggleActive(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ToggleActive flips a user's activation flag. Deactivated users keep
// their data but can no longer log in.
func (s *Service) ToggleActive(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.ToggleActive(ctx, userID)
	if err != nil {
		zap.L().Error("failed to toggle user activation", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	zap.L().Info("user activation toggled", zap.Int("user_id", userID), zap.Bool("active", user.Active))
	return user, nil
}
