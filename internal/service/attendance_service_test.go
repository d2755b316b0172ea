// internal/service/attendance_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_attendanceService_MarkAttendance(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := &config.Config{}

	academyID := uuid.New()
	studentID := uuid.New()
	lessonDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	dateKey := "2026-03-02"

	countStudent := func(tickets int) *model.Student {
		return &model.Student{
			StudentID:   studentID,
			AcademyID:   academyID,
			Name:        "김민준",
			TicketType:  model.TicketTypeCount,
			TicketCount: tickets,
		}
	}

	tests := []struct {
		name         string
		student      *model.Student
		existing     *model.Attendance
		reqStatus    string
		wantTicket   *model.TicketConsumedResponse
		wantNewCount int
		wantUpdate   bool // 원생 레코드 갱신(차감)이 일어나는가
	}{
		{
			name:         "정상계: 미출석→출석이면 1회 차감",
			student:      countStudent(5),
			existing:     nil,
			reqStatus:    model.AttendanceStatusPresent,
			wantTicket:   &model.TicketConsumedResponse{NewCount: 4, Warning: "none"},
			wantNewCount: 4,
			wantUpdate:   true,
		},
		{
			name:         "정상계: 보강도 수강권을 소모한다",
			student:      countStudent(5),
			existing:     nil,
			reqStatus:    model.AttendanceStatusMakeup,
			wantTicket:   &model.TicketConsumedResponse{NewCount: 4, Warning: "none"},
			wantNewCount: 4,
			wantUpdate:   true,
		},
		{
			name:    "정상계: 이미 출석인 날을 다시 출석 처리해도 재차감하지 않는다",
			student: countStudent(5),
			existing: &model.Attendance{
				AttendanceID: uuid.New(),
				AcademyID:    academyID,
				StudentID:    studentID,
				Date:         lessonDate,
				Status:       model.AttendanceStatusPresent,
			},
			reqStatus:  model.AttendanceStatusPresent,
			wantTicket: nil,
			wantUpdate: false,
		},
		{
			name:       "정상계: 결석 처리는 차감하지 않는다",
			student:    countStudent(5),
			existing:   nil,
			reqStatus:  model.AttendanceStatusAbsent,
			wantTicket: nil,
			wantUpdate: false,
		},
		{
			name:         "경계계: 잔여 3→2 는 low 경고",
			student:      countStudent(3),
			existing:     nil,
			reqStatus:    model.AttendanceStatusPresent,
			wantTicket:   &model.TicketConsumedResponse{NewCount: 2, Warning: "low"},
			wantNewCount: 2,
			wantUpdate:   true,
		},
		{
			name:         "경계계: 잔여 1→0 은 exhausted 경고",
			student:      countStudent(1),
			existing:     nil,
			reqStatus:    model.AttendanceStatusPresent,
			wantTicket:   &model.TicketConsumedResponse{NewCount: 0, Warning: "exhausted"},
			wantNewCount: 0,
			wantUpdate:   true,
		},
		{
			name:       "경계계: 잔여 0 이면 차감 없이 exhausted 경고만",
			student:    countStudent(0),
			existing:   nil,
			reqStatus:  model.AttendanceStatusPresent,
			wantTicket: &model.TicketConsumedResponse{NewCount: 0, Warning: "exhausted"},
			wantUpdate: false,
		},
		{
			name: "정상계: 기간제 원생은 차감하지 않는다",
			student: &model.Student{
				StudentID:  studentID,
				AcademyID:  academyID,
				Name:       "김민준",
				TicketType: model.TicketTypePeriod,
			},
			existing:   nil,
			reqStatus:  model.AttendanceStatusPresent,
			wantTicket: nil,
			wantUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attendanceRepo := new(mocks.AttendanceRepository)
			studentRepo := new(mocks.StudentRepository)
			svc := NewAttendanceService(db, attendanceRepo, studentRepo, &LogMailer{}, cfg)

			studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), academyID, studentID).
				Return(tt.student, nil).Once()

			if tt.existing != nil {
				attendanceRepo.On("FindByStudentAndDate", ctx, mock.AnythingOfType("*gorm.DB"), studentID, dateKey).
					Return(tt.existing, nil).Once()
			} else {
				attendanceRepo.On("FindByStudentAndDate", ctx, mock.AnythingOfType("*gorm.DB"), studentID, dateKey).
					Return(nil, model.ErrNotFound).Once()
			}

			attendanceRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Attendance")).
				Run(func(args mock.Arguments) {
					attendance := args.Get(2).(*model.Attendance)
					assert.Equal(t, tt.reqStatus, attendance.Status)
				}).Return(nil).Once()

			if tt.wantUpdate {
				studentRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Student")).
					Run(func(args mock.Arguments) {
						updated := args.Get(2).(*model.Student)
						assert.Equal(t, tt.wantNewCount, updated.TicketCount)
						assert.GreaterOrEqual(t, updated.TicketCount, 0)
					}).Return(nil).Once()
			}

			resp, err := svc.MarkAttendance(ctx, academyID, studentID, &model.PutAttendanceRequest{
				Date:   lessonDate,
				Status: tt.reqStatus,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.reqStatus, resp.Status)
			if tt.wantTicket == nil {
				assert.Nil(t, resp.Ticket)
			} else {
				require.NotNil(t, resp.Ticket)
				assert.Equal(t, tt.wantTicket.NewCount, resp.Ticket.NewCount)
				assert.Equal(t, tt.wantTicket.Warning, resp.Ticket.Warning)
			}

			if !tt.wantUpdate {
				studentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			}
			attendanceRepo.AssertExpectations(t)
			studentRepo.AssertExpectations(t)
		})
	}

	t.Run("이상계: 원생이 없으면 NotFound", func(t *testing.T) {
		attendanceRepo := new(mocks.AttendanceRepository)
		studentRepo := new(mocks.StudentRepository)
		svc := NewAttendanceService(db, attendanceRepo, studentRepo, &LogMailer{}, cfg)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), academyID, studentID).
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.MarkAttendance(ctx, academyID, studentID, &model.PutAttendanceRequest{
			Date:   lessonDate,
			Status: model.AttendanceStatusPresent,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
