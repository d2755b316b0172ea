// internal/service/export_service.go
package service

import (
	"bytes"
	"context"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ExportService interface {
	// ExportStudentRoster 는 원생 명부를 xlsx 로 만들어 바이트로 반환합니다.
	ExportStudentRoster(ctx context.Context, academyID uuid.UUID) ([]byte, error)
}

type exportService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
}

func NewExportService(db *gorm.DB, studentRepo repository.StudentRepository) ExportService {
	return &exportService{db: db, studentRepo: studentRepo}
}

const rosterSheet = "원생 명부"

func (s *exportService) ExportStudentRoster(ctx context.Context, academyID uuid.UUID) ([]byte, error) {
	logger := middleware.GetLogger(ctx)

	students, err := s.studentRepo.ListByAcademy(ctx, s.db, academyID)
	if err != nil {
		logger.Error("Failed to load students for export", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "원생 목록 조회에 실패했습니다.", "", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(rosterSheet)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "엑셀 파일 생성에 실패했습니다.", "", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"이름", "수준", "현재 교재", "진도율(%)", "수강권 종류", "잔여 횟수", "시작일", "만료일", "학부모 이메일"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(rosterSheet, cell, h)
	}

	for row, st := range students {
		values := []interface{}{
			st.Name,
			st.Level,
			st.CurrentBookLabel,
			st.ProgressPercent,
			ticketTypeLabel(st.TicketType),
			st.TicketCount,
			formatDatePtr(st.TicketStart),
			formatDatePtr(st.TicketEnd),
			st.ParentEmail,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(rosterSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Failed to write xlsx", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "엑셀 파일 생성에 실패했습니다.", "", err)
	}

	logger.Info("Student roster exported", "academy_id", academyID, "students", len(students))
	return buf.Bytes(), nil
}

func ticketTypeLabel(t string) string {
	switch t {
	case model.TicketTypeCount:
		return "횟수제"
	case model.TicketTypePeriod:
		return "기간제"
	default:
		return t
	}
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
