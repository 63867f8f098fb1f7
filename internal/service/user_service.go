package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parcelhub/internal/cache"
	"parcelhub/internal/errors"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

const (
	bcryptCost   = 10
	roleCacheTTL = 5 * time.Minute
)

// UserService exposes user registration, lookup and role administration. It
// doubles as the role store consulted by the authorization guards.
type UserService interface {
	// Register is idempotent: re-registering an existing email is a no-op
	// that returns the stored record and inserted=false.
	Register(ctx context.Context, name, email, password string) (user *model.User, inserted bool, err error)
	Search(ctx context.Context, email string) (*model.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, id uint, role string) (int64, error)
	InvalidateRole(ctx context.Context, email string)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func roleCacheKey(email string) string {
	return fmt.Sprintf("role:%s", email)
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*model.User, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return existing, false, nil
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Role:  model.RoleUser,
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, false, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// a concurrent registration can win between the existence check and
		// the insert; the unique index reports the loser
		if err == gorm.ErrDuplicatedKey {
			existing, ferr := s.repo.FindByEmail(ctx, email)
			if ferr != nil {
				return nil, false, fmt.Errorf("load existing user: %w", ferr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

func (s *userService) Search(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// RoleByEmail looks up the stored role for an email, serving from the redis
// cache when possible.
func (s *userService) RoleByEmail(ctx context.Context, email string) (string, error) {
	if data, _ := s.cache.Get(ctx, roleCacheKey(email)); data != nil {
		return string(data), nil
	}

	user, err := s.Search(ctx, email)
	if err != nil {
		return "", err
	}

	_ = s.cache.Set(ctx, roleCacheKey(email), []byte(user.Role), roleCacheTTL)
	return user.Role, nil
}

// SetRole changes a user's role by id and drops the cached lookup.
func (s *userService) SetRole(ctx context.Context, id uint, role string) (int64, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.ErrUserNotFound
		}
		return 0, err
	}

	modified, err := s.repo.UpdateRoleByID(ctx, id, role)
	if err != nil {
		return 0, fmt.Errorf("update role: %w", err)
	}
	s.InvalidateRole(ctx, user.Email)
	return modified, nil
}

func (s *userService) InvalidateRole(ctx context.Context, email string) {
	_ = s.cache.Delete(ctx, roleCacheKey(email))
}
