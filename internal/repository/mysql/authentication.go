package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type authenticationRepository struct {
	DB  *gorm.DB
	now domain.Clock
}

var _ domain.AuthenticationRepository = (*authenticationRepository)(nil)

func NewAuthenticationRepository(db *gorm.DB, now domain.Clock) *authenticationRepository {
	return &authenticationRepository{
		DB:  db,
		now: now,
	}
}

func (r *authenticationRepository) Store(ctx context.Context, token string, expiresAt time.Time) error {
	auth := model.Authentication{Token: token, ExpiresAt: expiresAt}
	return r.DB.WithContext(ctx).Create(&auth).Error
}

func (r *authenticationRepository) Verify(ctx context.Context, token string) error {
	var auth model.Authentication
	err := r.DB.WithContext(ctx).
		First(&auth, "token = ? AND expires_at > ?", token, r.now()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (r *authenticationRepository) Delete(ctx context.Context, token string) error {
	result := r.DB.WithContext(ctx).Where("token = ?", token).Delete(&model.Authentication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *authenticationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.Authentication{})
	return result.RowsAffected, result.Error
}
