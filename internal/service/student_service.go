// internal/service/student_service.go
package service

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentService interface {
	CreateStudent(ctx context.Context, academyID uuid.UUID, req *model.PostStudentRequest) (*model.Student, error)
	GetStudent(ctx context.Context, academyID, studentID uuid.UUID) (*model.Student, error)
	ListStudents(ctx context.Context, academyID uuid.UUID) ([]model.Student, error)
	UpdateStudent(ctx context.Context, academyID, studentID uuid.UUID, req *model.PatchStudentRequest) (*model.Student, error)
	DeleteStudent(ctx context.Context, academyID, studentID uuid.UUID) error
	ListProgress(ctx context.Context, academyID, studentID uuid.UUID) ([]model.ProgressRecordResponse, error)
}

type studentService struct {
	db           *gorm.DB
	studentRepo  repository.StudentRepository
	progressRepo repository.ProgressRepository
}

func NewStudentService(db *gorm.DB, studentRepo repository.StudentRepository, progressRepo repository.ProgressRepository) StudentService {
	return &studentService{db: db, studentRepo: studentRepo, progressRepo: progressRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, academyID uuid.UUID, req *model.PostStudentRequest) (*model.Student, error) {
	logger := middleware.GetLogger(ctx)

	level := req.Level
	if level == "" {
		level = model.MaterialLevelBeginner
	}

	student := &model.Student{
		StudentID:   uuid.New(),
		AcademyID:   academyID,
		Name:        req.Name,
		Level:       level,
		TicketType:  req.TicketType,
		TicketCount: req.TicketCount,
		TicketStart: req.TicketStart,
		TicketEnd:   req.TicketEnd,
		ParentEmail: req.ParentEmail,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.studentRepo.Create(ctx, tx, student); err != nil {
			logger.Error("Failed to create student", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "원생 등록에 실패했습니다.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Student created", "student_id", student.StudentID, "name", student.Name)
	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, academyID, studentID uuid.UUID) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, s.db, academyID, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context, academyID uuid.UUID) ([]model.Student, error) {
	logger := middleware.GetLogger(ctx)
	students, err := s.studentRepo.ListByAcademy(ctx, s.db, academyID)
	if err != nil {
		logger.Error("Error listing students", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "원생 목록 조회에 실패했습니다.", "", err)
	}
	return students, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, academyID, studentID uuid.UUID, req *model.PatchStudentRequest) (*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Student

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.studentRepo.FindByID(ctx, tx, academyID, studentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
		}

		if req.Name != nil {
			student.Name = *req.Name
		}
		if req.Level != nil {
			student.Level = *req.Level
		}
		if req.TicketType != nil {
			student.TicketType = *req.TicketType
		}
		if req.TicketCount != nil {
			student.TicketCount = *req.TicketCount
		}
		if req.TicketStart != nil {
			student.TicketStart = req.TicketStart
		}
		if req.TicketEnd != nil {
			student.TicketEnd = req.TicketEnd
		}
		if req.ParentEmail != nil {
			student.ParentEmail = *req.ParentEmail
		}

		if err := s.studentRepo.Update(ctx, tx, student); err != nil {
			logger.Error("Failed to update student", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "원생 정보 수정에 실패했습니다.", "", err)
		}

		updated = student
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Student updated", "student_id", updated.StudentID)
	return updated, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, academyID, studentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.studentRepo.Delete(ctx, tx, academyID, studentID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete student", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "원생 삭제에 실패했습니다.", "", err)
		}
		// 진도 기록도 함께 정리한다
		if err := s.progressRepo.DeleteByStudent(ctx, tx, studentID); err != nil {
			logger.Error("Failed to delete progress records for student", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "원생 삭제에 실패했습니다.", "", err)
		}
		return nil
	})

	if err == nil {
		logger.Info("Student deleted", "student_id", studentID)
	}
	return err
}

// ListProgress 는 원생의 교재별 최신 진도 목록을 반환합니다.
func (s *studentService) ListProgress(ctx context.Context, academyID, studentID uuid.UUID) ([]model.ProgressRecordResponse, error) {
	logger := middleware.GetLogger(ctx)

	// 소속 확인
	if _, err := s.studentRepo.FindByID(ctx, s.db, academyID, studentID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}

	records, err := s.progressRepo.ListByStudent(ctx, s.db, studentID)
	if err != nil {
		logger.Error("Error listing progress records", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "진도 조회에 실패했습니다.", "", err)
	}

	responses := make([]model.ProgressRecordResponse, 0, len(records))
	for _, r := range records {
		resp := model.ProgressRecordResponse{
			MaterialID: r.MaterialID,
			Position:   r.Position,
			Percent:    r.Percent,
			UpdatedAt:  r.UpdatedAt,
		}
		if r.Material != nil {
			resp.MaterialTitle = r.Material.Title
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
