// internal/service/lesson_note_service.go
package service

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/reconcile"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonNoteService interface {
	CreateLessonNote(ctx context.Context, academyID, studentID uuid.UUID, req *model.PostLessonNoteRequest) (*model.LessonNote, *reconcile.Result, error)
	GetLessonNote(ctx context.Context, academyID, noteID uuid.UUID) (*model.LessonNote, error)
	ListLessonNotes(ctx context.Context, academyID, studentID uuid.UUID) ([]model.LessonNote, error)
	UpdateLessonNote(ctx context.Context, academyID, noteID uuid.UUID, req *model.PutLessonNoteRequest) (*model.LessonNote, *reconcile.Result, error)
	DeleteLessonNote(ctx context.Context, academyID, noteID uuid.UUID) error
}

type lessonNoteService struct {
	db          *gorm.DB
	noteRepo    repository.LessonNoteRepository
	studentRepo repository.StudentRepository
	reconciler  ReconcileService
}

func NewLessonNoteService(db *gorm.DB, noteRepo repository.LessonNoteRepository, studentRepo repository.StudentRepository, reconciler ReconcileService) LessonNoteService {
	return &lessonNoteService{
		db:          db,
		noteRepo:    noteRepo,
		studentRepo: studentRepo,
		reconciler:  reconciler,
	}
}

// CreateLessonNote 는 알림장을 저장하고 진도 원문을 대조합니다. 대조 실패는
// 저장을 되돌리지 않습니다. 알림장이 먼저고 진도 갱신은 부수 효과입니다.
func (s *lessonNoteService) CreateLessonNote(ctx context.Context, academyID, studentID uuid.UUID, req *model.PostLessonNoteRequest) (*model.LessonNote, *reconcile.Result, error) {
	logger := middleware.GetLogger(ctx)

	student, err := s.studentRepo.FindByID(ctx, s.db, academyID, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	note := &model.LessonNote{
		LessonNoteID: uuid.New(),
		AcademyID:    academyID,
		StudentID:    studentID,
		StudentName:  student.Name,
		Date:         req.Date,
		Progress:     req.Progress,
		Homework:     req.Homework,
		Memo:         req.Memo,
		LearningStep: req.LearningStep,
		IsPublic:     isPublic,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.noteRepo.Create(ctx, tx, note); err != nil {
			logger.Error("Failed to create lesson note", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "알림장 저장에 실패했습니다.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Lesson note created", "lesson_note_id", note.LessonNoteID, "student_id", studentID)

	result := s.reconcileNote(ctx, academyID, note.LessonNoteID)
	return note, result, nil
}

func (s *lessonNoteService) GetLessonNote(ctx context.Context, academyID, noteID uuid.UUID) (*model.LessonNote, error) {
	note, err := s.noteRepo.FindByID(ctx, s.db, academyID, noteID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LESSON_NOTE_NOT_FOUND", "알림장을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}
	return note, nil
}

func (s *lessonNoteService) ListLessonNotes(ctx context.Context, academyID, studentID uuid.UUID) ([]model.LessonNote, error) {
	logger := middleware.GetLogger(ctx)
	notes, err := s.noteRepo.ListByStudent(ctx, s.db, academyID, studentID)
	if err != nil {
		logger.Error("Error listing lesson notes", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "알림장 목록 조회에 실패했습니다.", "", err)
	}
	return notes, nil
}

// UpdateLessonNote 는 알림장을 수정하고 진도 원문을 다시 대조합니다.
// 수정 전에 반영된 항목은 적용 이력이 남아 있으므로 중복 반영되지 않습니다.
func (s *lessonNoteService) UpdateLessonNote(ctx context.Context, academyID, noteID uuid.UUID, req *model.PutLessonNoteRequest) (*model.LessonNote, *reconcile.Result, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.LessonNote

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		note, err := s.noteRepo.FindByID(ctx, tx, academyID, noteID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("LESSON_NOTE_NOT_FOUND", "알림장을 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
		}

		note.Date = req.Date
		note.Progress = req.Progress
		note.Homework = req.Homework
		note.Memo = req.Memo
		note.LearningStep = req.LearningStep
		if req.IsPublic != nil {
			note.IsPublic = *req.IsPublic
		}

		if err := s.noteRepo.Update(ctx, tx, note); err != nil {
			logger.Error("Failed to update lesson note", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "알림장 수정에 실패했습니다.", "", err)
		}

		updated = note
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Lesson note updated", "lesson_note_id", updated.LessonNoteID)

	result := s.reconcileNote(ctx, academyID, updated.LessonNoteID)
	return updated, result, nil
}

func (s *lessonNoteService) DeleteLessonNote(ctx context.Context, academyID, noteID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.noteRepo.Delete(ctx, tx, academyID, noteID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("LESSON_NOTE_NOT_FOUND", "알림장을 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete lesson note", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "알림장 삭제에 실패했습니다.", "", err)
		}
		return nil
	})

	if err == nil {
		logger.Info("Lesson note deleted", "lesson_note_id", noteID)
	}
	return err
}

// reconcileNote 는 저장 직후의 대조를 수행합니다. 실패해도 알림장 저장 결과에는
// 영향을 주지 않고 로그만 남깁니다.
func (s *lessonNoteService) reconcileNote(ctx context.Context, academyID, noteID uuid.UUID) *reconcile.Result {
	logger := middleware.GetLogger(ctx)
	result, err := s.reconciler.Reconcile(ctx, academyID, noteID)
	if err != nil {
		logger.Error("Progress reconciliation failed after saving lesson note", "error", err, "lesson_note_id", noteID)
		return nil
	}
	return result
}
