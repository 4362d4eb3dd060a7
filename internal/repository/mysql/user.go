package mysql

import (
	"context"
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type userRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
	now   domain.Clock
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, idGen domain.IDGenerator, now domain.Clock) *userRepository {
	return &userRepository{
		DB:    db,
		idGen: idGen,
		now:   now,
	}
}

func (r *userRepository) Insert(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = "user-" + r.idGen()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.now()
	}
	userModel := model.NewUserFromDomain(u)

	return r.DB.WithContext(ctx).Create(userModel).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}
