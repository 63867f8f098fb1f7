package repository

import (
	"context"

	"gorm.io/gorm"

	"parcelhub/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRoleByID(ctx context.Context, id uint, role string) (int64, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRoleByID sets the role column and reports how many rows changed.
func (r *userRepository) UpdateRoleByID(ctx context.Context, id uint, role string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected, res.Error
}

// UpdateRoleByEmail sets the role column and reports how many rows changed.
func (r *userRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Update("role", role)
	return res.RowsAffected, res.Error
}
