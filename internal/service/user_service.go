package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/internal/transfer"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id int64) (*transfer.UserInfo, error)
}

type userService struct {
	u  repository.UserRepository
	bp repository.ProfileRepository
}

func NewUserService(u repository.UserRepository, bp repository.ProfileRepository) UserService {
	return &userService{
		u:  u,
		bp: bp,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id int64) (*transfer.UserInfo, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user info: %w", err)
	}
	if !isExist {
		slog.Info(ErrUserNotFound.Error())
		return nil, ErrUserNotFound
	}

	_, hasProfile, err := s.bp.GetByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting profile: %w", err)
	}

	return &transfer.UserInfo{User: user, HasProfile: hasProfile}, nil
}
