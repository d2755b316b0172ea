// internal/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/reconcile"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceService interface {
	MarkAttendance(ctx context.Context, academyID, studentID uuid.UUID, req *model.PutAttendanceRequest) (*model.PutAttendanceResponse, error)
	ListAttendance(ctx context.Context, academyID, studentID uuid.UUID, from, to string) ([]model.Attendance, error)
}

type attendanceService struct {
	db             *gorm.DB
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
	mailer         Mailer
	cfg            *config.Config
}

func NewAttendanceService(db *gorm.DB, attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository, mailer Mailer, cfg *config.Config) AttendanceService {
	return &attendanceService{
		db:             db,
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		mailer:         mailer,
		cfg:            cfg,
	}
}

// MarkAttendance 는 (원생, 일자) 의 출결 상태를 바꿉니다. 횟수제 원생의 수강권은
// 상태가 미출석→출석(present/makeup)으로 실제로 바뀔 때에만 1회 차감합니다.
// 같은 날을 출석으로 다시 저장해도 재차감하지 않습니다.
func (s *attendanceService) MarkAttendance(ctx context.Context, academyID, studentID uuid.UUID, req *model.PutAttendanceRequest) (*model.PutAttendanceResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *model.PutAttendanceResponse
	var lowBalanceStudent *model.Student
	var lowBalanceWarning reconcile.TicketWarning

	dateKey := req.Date.Format("2006-01-02")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.studentRepo.FindByID(ctx, tx, academyID, studentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
		}

		attendance, err := s.attendanceRepo.FindByStudentAndDate(ctx, tx, studentID, dateKey)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
			}
			attendance = &model.Attendance{
				AttendanceID: uuid.New(),
				AcademyID:    academyID,
				StudentID:    studentID,
				Date:         req.Date,
				Status:       model.AttendanceStatusNone,
			}
		}

		wasAttended := isAttended(attendance.Status)
		willAttend := isAttended(req.Status)

		attendance.Status = req.Status
		if err := s.attendanceRepo.Upsert(ctx, tx, attendance); err != nil {
			logger.Error("Failed to upsert attendance", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "출결 저장에 실패했습니다.", "", err)
		}

		resp = &model.PutAttendanceResponse{
			StudentID: studentID,
			Date:      req.Date,
			Status:    req.Status,
		}

		// 차감은 미출석→출석 전이에서만
		if student.TicketType != model.TicketTypeCount || wasAttended || !willAttend {
			return nil
		}

		consumption := reconcile.ConsumeTicket(student.TicketCount)
		if consumption.Consumed {
			student.TicketCount = consumption.NewCount
			if err := s.studentRepo.Update(ctx, tx, student); err != nil {
				logger.Error("Failed to update ticket count", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "수강권 차감에 실패했습니다.", "", err)
			}
		}

		resp.Ticket = &model.TicketConsumedResponse{
			NewCount: consumption.NewCount,
			Warning:  string(consumption.Warning),
		}

		if consumption.Warning != reconcile.TicketWarningNone {
			lowBalanceStudent = student
			lowBalanceWarning = consumption.Warning
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 잔여 경고 메일은 커밋 후에 보낸다. 발송 실패는 출결 결과에 영향을 주지 않는다.
	if lowBalanceStudent != nil && s.cfg.App.NotifyLowBalance && lowBalanceStudent.ParentEmail != "" {
		s.sendBalanceNotice(ctx, lowBalanceStudent, lowBalanceWarning)
	}

	logger.Info("Attendance marked", "student_id", studentID, "date", dateKey, "status", req.Status)
	return resp, nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, academyID, studentID uuid.UUID, from, to string) ([]model.Attendance, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.studentRepo.FindByID(ctx, s.db, academyID, studentID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}

	attendances, err := s.attendanceRepo.ListByStudent(ctx, s.db, studentID, from, to)
	if err != nil {
		logger.Error("Error listing attendance", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "출결 조회에 실패했습니다.", "", err)
	}
	return attendances, nil
}

// 출석으로 취급하는 상태. 보강(makeup)도 수강권을 소모한다.
func isAttended(status string) bool {
	return status == model.AttendanceStatusPresent || status == model.AttendanceStatusMakeup
}

func (s *attendanceService) sendBalanceNotice(ctx context.Context, student *model.Student, warning reconcile.TicketWarning) {
	logger := middleware.GetLogger(ctx)

	var subject, body string
	switch warning {
	case reconcile.TicketWarningExhausted:
		subject = "[피아노 학원] 수강권이 모두 소진되었습니다"
		body = fmt.Sprintf("%s 원생의 수강권이 모두 소진되었습니다. 재등록을 안내드립니다.", student.Name)
	case reconcile.TicketWarningLow:
		subject = "[피아노 학원] 수강권 잔여 횟수 안내"
		body = fmt.Sprintf("%s 원생의 수강권이 %d회 남았습니다.", student.Name, student.TicketCount)
	default:
		return
	}

	if err := s.mailer.Send(ctx, student.ParentEmail, subject, body); err != nil {
		logger.Error("Failed to send ticket balance notice", "error", err, "student_id", student.StudentID)
	}
}

// ExpiryNotice 는 기간제 만료 예고 메일의 제목과 본문을 만듭니다. 스윕 배치에서
// 사용합니다.
func ExpiryNotice(student *model.Student, now time.Time) (subject, body string) {
	subject = "[피아노 학원] 수강권 만료 예정 안내"
	if student.TicketEnd != nil {
		days := int(student.TicketEnd.Sub(now).Hours() / 24)
		body = fmt.Sprintf("%s 원생의 수강권이 %s (%d일 후) 만료됩니다.", student.Name, student.TicketEnd.Format("2006-01-02"), days)
	} else {
		body = fmt.Sprintf("%s 원생의 수강권이 곧 만료됩니다.", student.Name)
	}
	return subject, body
}
