package service

import (
	"context"

	"esg-maturity-backend/internal/model"
	"esg-maturity-backend/internal/repository"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}
