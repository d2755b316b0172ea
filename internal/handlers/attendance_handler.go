// internal/handlers/attendance_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service"
	"github.com/newrise0410/piano-academy-app-sub000/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AttendanceHandler struct {
	service service.AttendanceService
	logger  *slog.Logger
}

func NewAttendanceHandler(s service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceHandler{
		service: s,
		logger:  logger,
	}
}

// PutAttendance 는 원생의 일자별 출결 상태를 저장합니다. 같은 날을 다시
// 저장하면 덮어씁니다.
func (h *AttendanceHandler) PutAttendance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutAttendance"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	studentID, err := uuid.Parse(chi.URLParam(r, "student_id"))
	if err != nil {
		logger.Warn("Invalid student ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "student_id 형식이 올바르지 않습니다.", "student_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutAttendanceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "요청 본문의 형식이 올바르지 않습니다.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.MarkAttendance(r.Context(), academyID, studentID, &req)
	if err != nil {
		logger.Error("Error marking attendance in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attendance marked successfully",
		slog.String("student_id", studentID.String()),
		slog.String("status", resp.Status))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetAttendance 는 원생의 출결 목록을 반환합니다. from/to 쿼리 파라미터로
// 기간을 제한할 수 있습니다 (YYYY-MM-DD).
func (h *AttendanceHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAttendance"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	studentID, err := uuid.Parse(chi.URLParam(r, "student_id"))
	if err != nil {
		logger.Warn("Invalid student ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "student_id 형식이 올바르지 않습니다.", "student_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	attendances, err := h.service.ListAttendance(r.Context(), academyID, studentID, from, to)
	if err != nil {
		logger.Error("Error listing attendance in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if attendances == nil {
		attendances = []model.Attendance{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, attendances, logger)
}
