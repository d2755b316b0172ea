// internal/repository/academy_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, academy *model.Academy) error
	FindByID(ctx context.Context, db *gorm.DB, academyID uuid.UUID) (*model.Academy, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Academy, error)
	Update(ctx context.Context, tx *gorm.DB, academy *model.Academy) error
}

type gormAcademyRepository struct{}

func NewGormAcademyRepository() AcademyRepository {
	return &gormAcademyRepository{}
}

func (r *gormAcademyRepository) Create(ctx context.Context, tx *gorm.DB, academy *model.Academy) error {
	result := tx.WithContext(ctx).Create(academy)
	if result.Error != nil {
		// 유니크 제약 위반은 Conflict 로 변환 (레이스 대비)
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) || strings.Contains(result.Error.Error(), "duplicate key") {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormAcademyRepository) FindByID(ctx context.Context, db *gorm.DB, academyID uuid.UUID) (*model.Academy, error) {
	var academy model.Academy
	result := db.WithContext(ctx).Where("academy_id = ?", academyID).First(&academy)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &academy, nil
}

func (r *gormAcademyRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Academy, error) {
	var academy model.Academy
	result := db.WithContext(ctx).Where("email = ?", email).First(&academy)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &academy, nil
}

func (r *gormAcademyRepository) Update(ctx context.Context, tx *gorm.DB, academy *model.Academy) error {
	return tx.WithContext(ctx).Save(academy).Error
}
