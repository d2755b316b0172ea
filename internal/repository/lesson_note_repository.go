// internal/repository/lesson_note_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonNoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.LessonNote) error
	FindByID(ctx context.Context, db *gorm.DB, academyID, noteID uuid.UUID) (*model.LessonNote, error)
	ListByStudent(ctx context.Context, db *gorm.DB, academyID, studentID uuid.UUID) ([]model.LessonNote, error)
	Update(ctx context.Context, tx *gorm.DB, note *model.LessonNote) error
	Delete(ctx context.Context, tx *gorm.DB, academyID, noteID uuid.UUID) error
}

type gormLessonNoteRepository struct{}

func NewGormLessonNoteRepository() LessonNoteRepository {
	return &gormLessonNoteRepository{}
}

func (r *gormLessonNoteRepository) Create(ctx context.Context, tx *gorm.DB, note *model.LessonNote) error {
	return tx.WithContext(ctx).Create(note).Error
}

func (r *gormLessonNoteRepository) FindByID(ctx context.Context, db *gorm.DB, academyID, noteID uuid.UUID) (*model.LessonNote, error) {
	var note model.LessonNote
	result := db.WithContext(ctx).
		Where("academy_id = ? AND lesson_note_id = ?", academyID, noteID).
		First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &note, nil
}

func (r *gormLessonNoteRepository) ListByStudent(ctx context.Context, db *gorm.DB, academyID, studentID uuid.UUID) ([]model.LessonNote, error) {
	var notes []model.LessonNote
	result := db.WithContext(ctx).
		Where("academy_id = ? AND student_id = ?", academyID, studentID).
		Order("date DESC, created_at DESC").
		Find(&notes)
	if result.Error != nil {
		return nil, result.Error
	}
	return notes, nil
}

func (r *gormLessonNoteRepository) Update(ctx context.Context, tx *gorm.DB, note *model.LessonNote) error {
	return tx.WithContext(ctx).Save(note).Error
}

func (r *gormLessonNoteRepository) Delete(ctx context.Context, tx *gorm.DB, academyID, noteID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("academy_id = ? AND lesson_note_id = ?", academyID, noteID).
		Delete(&model.LessonNote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
