// internal/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	FindByStudentAndDate(ctx context.Context, db *gorm.DB, studentID uuid.UUID, date string) (*model.Attendance, error)
	Upsert(ctx context.Context, tx *gorm.DB, attendance *model.Attendance) error
	ListByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID, from, to string) ([]model.Attendance, error)
	ListByAcademyAndDate(ctx context.Context, db *gorm.DB, academyID uuid.UUID, date string) ([]model.Attendance, error)
}

type gormAttendanceRepository struct{}

func NewGormAttendanceRepository() AttendanceRepository {
	return &gormAttendanceRepository{}
}

func (r *gormAttendanceRepository) FindByStudentAndDate(ctx context.Context, db *gorm.DB, studentID uuid.UUID, date string) (*model.Attendance, error) {
	var attendance model.Attendance
	result := db.WithContext(ctx).
		Where("student_id = ? AND date = ?", studentID, date).
		First(&attendance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &attendance, nil
}

func (r *gormAttendanceRepository) Upsert(ctx context.Context, tx *gorm.DB, attendance *model.Attendance) error {
	return tx.WithContext(ctx).Save(attendance).Error
}

func (r *gormAttendanceRepository) ListByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID, from, to string) ([]model.Attendance, error) {
	var attendances []model.Attendance
	query := db.WithContext(ctx).Where("student_id = ?", studentID)
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	result := query.Order("date DESC").Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}
	return attendances, nil
}

func (r *gormAttendanceRepository) ListByAcademyAndDate(ctx context.Context, db *gorm.DB, academyID uuid.UUID, date string) ([]model.Attendance, error) {
	var attendances []model.Attendance
	result := db.WithContext(ctx).
		Where("academy_id = ? AND date = ?", academyID, date).
		Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}
	return attendances, nil
}
