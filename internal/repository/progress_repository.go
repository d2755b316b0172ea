// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByStudentAndMaterial(ctx context.Context, db *gorm.DB, studentID, materialID uuid.UUID) (*model.ProgressRecord, error)
	Upsert(ctx context.Context, tx *gorm.DB, record *model.ProgressRecord) error
	ListByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.ProgressRecord, error)
	// ApplicationExists 는 (원생, 교재, 수업일지) 조합이 이미 반영됐는지 확인합니다.
	// 같은 일지를 다시 저장해도 진도가 중복 반영되지 않게 하는 멱등성 키입니다.
	ApplicationExists(ctx context.Context, db *gorm.DB, studentID, materialID, lessonNoteID uuid.UUID) (bool, error)
	CreateApplication(ctx context.Context, tx *gorm.DB, app *model.ProgressApplication) error
	DeleteByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) FindByStudentAndMaterial(ctx context.Context, db *gorm.DB, studentID, materialID uuid.UUID) (*model.ProgressRecord, error) {
	var record model.ProgressRecord
	result := db.WithContext(ctx).
		Where("student_id = ? AND material_id = ?", studentID, materialID).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &record, nil
}

func (r *gormProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, record *model.ProgressRecord) error {
	return tx.WithContext(ctx).Save(record).Error
}

func (r *gormProgressRepository) ListByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	result := db.WithContext(ctx).
		Preload("Material").
		Where("student_id = ?", studentID).
		Order("updated_at DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *gormProgressRepository) ApplicationExists(ctx context.Context, db *gorm.DB, studentID, materialID, lessonNoteID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.ProgressApplication{}).
		Where("student_id = ? AND material_id = ? AND lesson_note_id = ?", studentID, materialID, lessonNoteID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormProgressRepository) CreateApplication(ctx context.Context, tx *gorm.DB, app *model.ProgressApplication) error {
	result := tx.WithContext(ctx).Create(app)
	if result.Error != nil {
		// 복합 PK 충돌은 이미 반영된 것이므로 Conflict 로 알린다
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) || strings.Contains(result.Error.Error(), "duplicate key") ||
			strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormProgressRepository) DeleteByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) error {
	if err := tx.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&model.ProgressApplication{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&model.ProgressRecord{}).Error
}
