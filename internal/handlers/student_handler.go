// internal/handlers/student_handler.go
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

type StudentHandler struct {
	service service.StudentService
	logger  *slog.Logger
}

func NewStudentHandler(s service.StudentService, logger *slog.Logger) *StudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentHandler{
		service: s,
		logger:  logger,
	}
}

// PostStudent 는 원생을 등록합니다.
func (h *StudentHandler) PostStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostStudent"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("academy_id", academyID.String()))

	var req model.PostStudentRequest
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

	student, err := h.service.CreateStudent(r.Context(), academyID, &req)
	if err != nil {
		logger.Error("Error creating student in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student created successfully", slog.String("student_id", student.StudentID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, student, logger)
}

// GetStudents 는 학원의 원생 목록을 반환합니다.
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudents"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	students, err := h.service.ListStudents(r.Context(), academyID)
	if err != nil {
		logger.Error("Error listing students in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if students == nil {
		students = []model.Student{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, students, logger)
}

// GetStudent 는 원생 하나를 조회합니다.
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudent"))

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

	student, err := h.service.GetStudent(r.Context(), academyID, studentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, student, logger)
}

// PatchStudent 는 원생 정보를 부분 수정합니다.
func (h *StudentHandler) PatchStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchStudent"))

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

	var req model.PatchStudentRequest
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

	student, err := h.service.UpdateStudent(r.Context(), academyID, studentID, &req)
	if err != nil {
		logger.Error("Error updating student in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student updated successfully", slog.String("student_id", student.StudentID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, student, logger)
}

// DeleteStudent 는 원생을 삭제합니다.
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteStudent"))

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

	if err := h.service.DeleteStudent(r.Context(), academyID, studentID); err != nil {
		logger.Error("Error deleting student in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student deleted successfully", slog.String("student_id", studentID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetStudentProgress 는 원생의 교재별 최신 진도 목록을 반환합니다.
func (h *StudentHandler) GetStudentProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudentProgress"))

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

	records, err := h.service.ListProgress(r.Context(), academyID, studentID)
	if err != nil {
		logger.Error("Error listing progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []model.ProgressRecordResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}
