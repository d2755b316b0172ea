// internal/repository/material_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, tx *gorm.DB, material *model.Material) error
	FindByID(ctx context.Context, db *gorm.DB, academyID, materialID uuid.UUID) (*model.Material, error)
	// ListByAcademy 는 등록 순서(created_at, material_id)로 정렬해 반환합니다.
	// 대조 파이프라인의 결정적 동점 처리가 이 순서에 의존합니다.
	ListByAcademy(ctx context.Context, db *gorm.DB, academyID uuid.UUID) ([]model.Material, error)
	CheckTitleExists(ctx context.Context, db *gorm.DB, academyID uuid.UUID, title string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, material *model.Material) error
	Delete(ctx context.Context, tx *gorm.DB, academyID, materialID uuid.UUID) error
}

type gormMaterialRepository struct{}

func NewGormMaterialRepository() MaterialRepository {
	return &gormMaterialRepository{}
}

func (r *gormMaterialRepository) Create(ctx context.Context, tx *gorm.DB, material *model.Material) error {
	return tx.WithContext(ctx).Create(material).Error
}

func (r *gormMaterialRepository) FindByID(ctx context.Context, db *gorm.DB, academyID, materialID uuid.UUID) (*model.Material, error) {
	var material model.Material
	result := db.WithContext(ctx).
		Where("academy_id = ? AND material_id = ?", academyID, materialID).
		First(&material)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &material, nil
}

func (r *gormMaterialRepository) ListByAcademy(ctx context.Context, db *gorm.DB, academyID uuid.UUID) ([]model.Material, error) {
	var materials []model.Material
	result := db.WithContext(ctx).
		Where("academy_id = ?", academyID).
		Order("created_at ASC, material_id ASC").
		Find(&materials)
	if result.Error != nil {
		return nil, result.Error
	}
	return materials, nil
}

func (r *gormMaterialRepository) CheckTitleExists(ctx context.Context, db *gorm.DB, academyID uuid.UUID, title string, excludeID *uuid.UUID) (bool, error) {
	query := db.WithContext(ctx).Model(&model.Material{}).
		Where("academy_id = ? AND title = ?", academyID, title)
	if excludeID != nil {
		query = query.Where("material_id != ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormMaterialRepository) Update(ctx context.Context, tx *gorm.DB, material *model.Material) error {
	return tx.WithContext(ctx).Save(material).Error
}

func (r *gormMaterialRepository) Delete(ctx context.Context, tx *gorm.DB, academyID, materialID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("academy_id = ? AND material_id = ?", academyID, materialID).
		Delete(&model.Material{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
