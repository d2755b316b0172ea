// internal/handlers/attendance_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/handlers"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAttendanceRouter(svc *mocks.AttendanceService) *chi.Mux {
	h := handlers.NewAttendanceHandler(svc, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevAcademyContextMiddleware)
	router.Put("/api/v1/students/{student_id}/attendance", h.PutAttendance)
	router.Get("/api/v1/students/{student_id}/attendance", h.GetAttendance)
	return router
}

func TestAttendanceHandler_PutAttendance(t *testing.T) {
	academyID := uuid.New()
	studentID := uuid.New()
	lessonDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	validReq := model.PutAttendanceRequest{
		Date:   lessonDate,
		Status: model.AttendanceStatusPresent,
	}

	t.Run("정상계: 출석 저장과 수강권 차감 결과 반환", func(t *testing.T) {
		svc := new(mocks.AttendanceService)
		svc.On("MarkAttendance", mock.Anything, academyID, studentID, &validReq).
			Return(&model.PutAttendanceResponse{
				StudentID: studentID,
				Date:      lessonDate,
				Status:    model.AttendanceStatusPresent,
				Ticket:    &model.TicketConsumedResponse{NewCount: 2, Warning: "low"},
			}, nil).Once()
		router := newAttendanceRouter(svc)

		url := fmt.Sprintf("/api/v1/students/%s/attendance", studentID)
		req := createRequest(t, "PUT", url, validReq, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp model.PutAttendanceResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, model.AttendanceStatusPresent, resp.Status)
		require.NotNil(t, resp.Ticket)
		assert.Equal(t, 2, resp.Ticket.NewCount)
		assert.Equal(t, "low", resp.Ticket.Warning)
		svc.AssertExpectations(t)
	})

	t.Run("정상계: 차감이 없으면 ticket 은 생략", func(t *testing.T) {
		svc := new(mocks.AttendanceService)
		absentReq := model.PutAttendanceRequest{Date: lessonDate, Status: model.AttendanceStatusAbsent}
		svc.On("MarkAttendance", mock.Anything, academyID, studentID, &absentReq).
			Return(&model.PutAttendanceResponse{
				StudentID: studentID,
				Date:      lessonDate,
				Status:    model.AttendanceStatusAbsent,
			}, nil).Once()
		router := newAttendanceRouter(svc)

		url := fmt.Sprintf("/api/v1/students/%s/attendance", studentID)
		req := createRequest(t, "PUT", url, absentReq, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), `"ticket"`)
	})

	t.Run("이상계: 허용되지 않는 상태는 400", func(t *testing.T) {
		svc := new(mocks.AttendanceService)
		router := newAttendanceRouter(svc)

		url := fmt.Sprintf("/api/v1/students/%s/attendance", studentID)
		req := createRequest(t, "PUT", url,
			model.PutAttendanceRequest{Date: lessonDate, Status: "late"}, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "MarkAttendance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("이상계: 없는 원생은 404", func(t *testing.T) {
		svc := new(mocks.AttendanceService)
		svc.On("MarkAttendance", mock.Anything, academyID, studentID, &validReq).
			Return(nil, model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)).Once()
		router := newAttendanceRouter(svc)

		url := fmt.Sprintf("/api/v1/students/%s/attendance", studentID)
		req := createRequest(t, "PUT", url, validReq, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAttendanceHandler_GetAttendance(t *testing.T) {
	academyID := uuid.New()
	studentID := uuid.New()

	t.Run("정상계: from/to 쿼리를 그대로 전달", func(t *testing.T) {
		svc := new(mocks.AttendanceService)
		svc.On("ListAttendance", mock.Anything, academyID, studentID, "2026-03-01", "2026-03-31").
			Return([]model.Attendance{
				{AttendanceID: uuid.New(), StudentID: studentID, Status: model.AttendanceStatusPresent},
			}, nil).Once()
		router := newAttendanceRouter(svc)

		url := fmt.Sprintf("/api/v1/students/%s/attendance?from=2026-03-01&to=2026-03-31", studentID)
		req := createRequest(t, "GET", url, nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []model.Attendance
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		svc.AssertExpectations(t)
	})

	t.Run("정상계: 기록이 없으면 빈 배열", func(t *testing.T) {
		svc := new(mocks.AttendanceService)
		svc.On("ListAttendance", mock.Anything, academyID, studentID, "", "").
			Return(nil, nil).Once()
		router := newAttendanceRouter(svc)

		url := fmt.Sprintf("/api/v1/students/%s/attendance", studentID)
		req := createRequest(t, "GET", url, nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}
