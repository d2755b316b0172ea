// internal/repository/token_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, tx *gorm.DB, token *model.AccountVerificationToken) error
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*model.AccountVerificationToken, error)
	Delete(ctx context.Context, tx *gorm.DB, token string) error
	DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) Create(ctx context.Context, tx *gorm.DB, token *model.AccountVerificationToken) error {
	return tx.WithContext(ctx).Create(token).Error
}

func (r *gormTokenRepository) FindByToken(ctx context.Context, db *gorm.DB, token string) (*model.AccountVerificationToken, error) {
	var record model.AccountVerificationToken
	result := db.WithContext(ctx).Where("token = ?", token).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &record, nil
}

func (r *gormTokenRepository) Delete(ctx context.Context, tx *gorm.DB, token string) error {
	return tx.WithContext(ctx).Where("token = ?", token).Delete(&model.AccountVerificationToken{}).Error
}

func (r *gormTokenRepository) DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	result := tx.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.AccountVerificationToken{})
	return result.RowsAffected, result.Error
}
