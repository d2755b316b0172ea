// internal/repository/student_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, student *model.Student) error
	FindByID(ctx context.Context, db *gorm.DB, academyID, studentID uuid.UUID) (*model.Student, error)
	ListByAcademy(ctx context.Context, db *gorm.DB, academyID uuid.UUID) ([]model.Student, error)
	Update(ctx context.Context, tx *gorm.DB, student *model.Student) error
	Delete(ctx context.Context, tx *gorm.DB, academyID, studentID uuid.UUID) error
	// ListTicketExpiring 은 기간권 만료일이 [from, to] 범위에 있는 원생을 학원 무관하게 반환합니다.
	// 만료 예고 스윕 배치에서 사용합니다.
	ListTicketExpiring(ctx context.Context, db *gorm.DB, from, to string) ([]model.Student, error)
}

type gormStudentRepository struct{}

func NewGormStudentRepository() StudentRepository {
	return &gormStudentRepository{}
}

func (r *gormStudentRepository) Create(ctx context.Context, tx *gorm.DB, student *model.Student) error {
	return tx.WithContext(ctx).Create(student).Error
}

func (r *gormStudentRepository) FindByID(ctx context.Context, db *gorm.DB, academyID, studentID uuid.UUID) (*model.Student, error) {
	var student model.Student
	result := db.WithContext(ctx).
		Where("academy_id = ? AND student_id = ?", academyID, studentID).
		First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &student, nil
}

func (r *gormStudentRepository) ListByAcademy(ctx context.Context, db *gorm.DB, academyID uuid.UUID) ([]model.Student, error) {
	var students []model.Student
	result := db.WithContext(ctx).
		Where("academy_id = ?", academyID).
		Order("name ASC, student_id ASC").
		Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}
	return students, nil
}

func (r *gormStudentRepository) Update(ctx context.Context, tx *gorm.DB, student *model.Student) error {
	return tx.WithContext(ctx).Save(student).Error
}

func (r *gormStudentRepository) Delete(ctx context.Context, tx *gorm.DB, academyID, studentID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("academy_id = ? AND student_id = ?", academyID, studentID).
		Delete(&model.Student{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormStudentRepository) ListTicketExpiring(ctx context.Context, db *gorm.DB, from, to string) ([]model.Student, error) {
	var students []model.Student
	result := db.WithContext(ctx).
		Where("ticket_type = ? AND ticket_end IS NOT NULL AND ticket_end BETWEEN ? AND ?",
			model.TicketTypePeriod, from, to).
		Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}
	return students, nil
}
