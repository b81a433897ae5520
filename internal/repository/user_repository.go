package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"esg-maturity-backend/internal/db"
	"esg-maturity-backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	qe *db.QueryExecutor
}

func NewUserRepository(conn *gorm.DB) UserRepository {
	return &userRepository{qe: db.NewQueryExecutor(conn)}
}

func (r *userRepository) CreateUser(ctx context.Context, user *model.User) error {
	return r.qe.Conn(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.qe.Conn(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.qe.Conn(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.qe.Conn(ctx).Order("id asc").Find(&users).Error
	return users, err
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.qe.Exists(ctx, &model.User{}, map[string]interface{}{"email": email})
}
