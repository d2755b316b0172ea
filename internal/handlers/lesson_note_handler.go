// internal/handlers/lesson_note_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/reconcile"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service"
	"github.com/newrise0410/piano-academy-app-sub000/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type LessonNoteHandler struct {
	service   service.LessonNoteService
	reconcile service.ReconcileService
	polish    service.PolishService
	logger    *slog.Logger
}

func NewLessonNoteHandler(s service.LessonNoteService, rc service.ReconcileService, polish service.PolishService, logger *slog.Logger) *LessonNoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonNoteHandler{
		service:   s,
		reconcile: rc,
		polish:    polish,
		logger:    logger,
	}
}

// 알림장 저장 응답. 저장 직후의 진도 대조 결과를 함께 돌려주어 프런트가
// 미등록 교재 마법사를 바로 띄울 수 있게 합니다.
type LessonNoteResponse struct {
	Note      *model.LessonNote `json:"note"`
	Reconcile *reconcile.Result `json:"reconcile,omitempty"`
}

// PostLessonNote 는 원생의 알림장을 작성합니다.
func (h *LessonNoteHandler) PostLessonNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLessonNote"))

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

	var req model.PostLessonNoteRequest
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

	note, result, err := h.service.CreateLessonNote(r.Context(), academyID, studentID, &req)
	if err != nil {
		logger.Error("Error creating lesson note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson note created successfully", slog.String("lesson_note_id", note.LessonNoteID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, LessonNoteResponse{Note: note, Reconcile: result}, logger)
}

// GetLessonNotes 는 원생의 알림장 목록을 최신순으로 반환합니다.
func (h *LessonNoteHandler) GetLessonNotes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessonNotes"))

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

	notes, err := h.service.ListLessonNotes(r.Context(), academyID, studentID)
	if err != nil {
		logger.Error("Error listing lesson notes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if notes == nil {
		notes = []model.LessonNote{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, notes, logger)
}

// GetLessonNote 는 알림장 하나를 조회합니다.
func (h *LessonNoteHandler) GetLessonNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessonNote"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "lesson_note_id"))
	if err != nil {
		logger.Warn("Invalid lesson note ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lesson_note_id 형식이 올바르지 않습니다.", "lesson_note_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	note, err := h.service.GetLessonNote(r.Context(), academyID, noteID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}

// PutLessonNote 는 알림장을 수정하고 진도를 다시 대조합니다.
func (h *LessonNoteHandler) PutLessonNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutLessonNote"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "lesson_note_id"))
	if err != nil {
		logger.Warn("Invalid lesson note ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lesson_note_id 형식이 올바르지 않습니다.", "lesson_note_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutLessonNoteRequest
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

	note, result, err := h.service.UpdateLessonNote(r.Context(), academyID, noteID, &req)
	if err != nil {
		logger.Error("Error updating lesson note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson note updated successfully", slog.String("lesson_note_id", note.LessonNoteID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, LessonNoteResponse{Note: note, Reconcile: result}, logger)
}

// DeleteLessonNote 는 알림장을 삭제합니다. 이미 반영된 진도는 그대로 둡니다.
func (h *LessonNoteHandler) DeleteLessonNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteLessonNote"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "lesson_note_id"))
	if err != nil {
		logger.Warn("Invalid lesson note ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lesson_note_id 형식이 올바르지 않습니다.", "lesson_note_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteLessonNote(r.Context(), academyID, noteID); err != nil {
		logger.Error("Error deleting lesson note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson note deleted successfully", slog.String("lesson_note_id", noteID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// PostReconcile 은 알림장의 진도 원문을 수동으로 다시 대조합니다.
func (h *LessonNoteHandler) PostReconcile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReconcile"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "lesson_note_id"))
	if err != nil {
		logger.Warn("Invalid lesson note ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lesson_note_id 형식이 올바르지 않습니다.", "lesson_note_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	result, err := h.reconcile.Reconcile(r.Context(), academyID, noteID)
	if err != nil {
		logger.Error("Error reconciling lesson note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson note reconciled",
		slog.String("lesson_note_id", noteID.String()),
		slog.Int("updated", len(result.UpdatedItems)),
		slog.Int("unknowns", len(result.UnknownTextbooks)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// PostResolveUnknown 은 미등록 교재 마법사의 한 스텝을 처리합니다.
func (h *LessonNoteHandler) PostResolveUnknown(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostResolveUnknown"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "lesson_note_id"))
	if err != nil {
		logger.Warn("Invalid lesson note ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lesson_note_id 형식이 올바르지 않습니다.", "lesson_note_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req reconcile.ResolveRequest
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

	resp, err := h.reconcile.ResolveUnknown(r.Context(), academyID, noteID, &req)
	if err != nil {
		logger.Error("Error resolving unknown material in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostPolish 는 알림장 문구를 학부모 안내에 맞게 다듬습니다.
func (h *LessonNoteHandler) PostPolish(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostPolish"))

	if _, err := middleware.GetAcademyIDFromContext(r.Context()); err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PolishTextRequest
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

	resp, err := h.polish.Polish(r.Context(), &req)
	if err != nil {
		logger.Error("Error polishing text in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
