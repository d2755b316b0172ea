// internal/handlers/material_handler.go
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

type MaterialHandler struct {
	service service.MaterialService
	logger  *slog.Logger
}

func NewMaterialHandler(s service.MaterialService, logger *slog.Logger) *MaterialHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MaterialHandler{
		service: s,
		logger:  logger,
	}
}

// PostMaterial 은 교재를 카탈로그에 등록합니다.
func (h *MaterialHandler) PostMaterial(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostMaterial"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("academy_id", academyID.String()))

	var req model.PostMaterialRequest
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

	material, err := h.service.CreateMaterial(r.Context(), academyID, &req)
	if err != nil {
		logger.Error("Error creating material in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Material created successfully", slog.String("material_id", material.MaterialID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, material, logger)
}

// GetMaterials 는 학원의 교재 카탈로그 전체를 반환합니다.
func (h *MaterialHandler) GetMaterials(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMaterials"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	materials, err := h.service.ListMaterials(r.Context(), academyID)
	if err != nil {
		logger.Error("Error listing materials in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if materials == nil {
		materials = []model.Material{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, materials, logger)
}

// GetMaterial 은 교재 하나를 조회합니다.
func (h *MaterialHandler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMaterial"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	materialID, err := uuid.Parse(chi.URLParam(r, "material_id"))
	if err != nil {
		logger.Warn("Invalid material ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "material_id 형식이 올바르지 않습니다.", "material_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	material, err := h.service.GetMaterial(r.Context(), academyID, materialID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, material, logger)
}

// PutMaterial 은 교재 정보를 수정합니다.
func (h *MaterialHandler) PutMaterial(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutMaterial"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	materialID, err := uuid.Parse(chi.URLParam(r, "material_id"))
	if err != nil {
		logger.Warn("Invalid material ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "material_id 형식이 올바르지 않습니다.", "material_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutMaterialRequest
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

	material, err := h.service.UpdateMaterial(r.Context(), academyID, materialID, &req)
	if err != nil {
		logger.Error("Error updating material in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Material updated successfully", slog.String("material_id", material.MaterialID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, material, logger)
}

// DeleteMaterial 은 교재를 카탈로그에서 삭제합니다.
func (h *MaterialHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMaterial"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	materialID, err := uuid.Parse(chi.URLParam(r, "material_id"))
	if err != nil {
		logger.Warn("Invalid material ID format in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "material_id 형식이 올바르지 않습니다.", "material_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteMaterial(r.Context(), academyID, materialID); err != nil {
		logger.Error("Error deleting material in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Material deleted successfully", slog.String("material_id", materialID.String()))
	w.WriteHeader(http.StatusNoContent)
}
