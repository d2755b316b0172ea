// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service"
	"github.com/newrise0410/piano-academy-app-sub000/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// PostRegister 는 학원 계정을 등록합니다.
func (h *AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostRegister"))

	var req model.RegisterRequest
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

	academy, err := h.service.RegisterAcademy(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering academy in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Academy registered successfully", slog.String("academy_id", academy.AcademyID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewAcademyResponse(academy), logger)
}

// GetVerify 는 메일 링크의 토큰으로 계정을 활성화합니다.
func (h *AuthHandler) GetVerify(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVerify"))

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("Verification token missing in query")
		appErr := model.NewAppError("INVALID_URL_PARAM", "token 파라미터가 필요합니다.", "token", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.VerifyAccount(r.Context(), token); err != nil {
		logger.Warn("Account verification failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account verified successfully")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "계정이 활성화되었습니다. 로그인해 주세요."}, logger)
}

// PostLogin 은 로그인 후 액세스 토큰을 발급합니다.
func (h *AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLogin"))

	var req model.LoginRequest
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

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Login failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login successful")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetMe 는 인증된 학원 계정 정보를 반환합니다.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	academy, err := h.service.GetAcademy(r.Context(), academyID)
	if err != nil {
		logger.Error("Error getting academy in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewAcademyResponse(academy), logger)
}
