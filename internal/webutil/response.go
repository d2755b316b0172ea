// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError 는 에러를 해석해 알맞은 JSON 에러 응답을 반환합니다.
// 애플리케이션 에러 처리의 중심입니다.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// AppError 가 아닌 예상 밖의 에러. 로그에만 상세를 남기고
		// 클라이언트에는 일반 메시지를 돌려준다.
		logger.Error("Unhandled error", "error", err)
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "서버 내부 오류가 발생했습니다.",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode 는 애플리케이션 에러를 HTTP 상태 코드로 맵핑합니다.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden) || errors.Is(err, model.ErrAcademyNotFound):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON 은 JSON 응답을 반환합니다.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"응답 생성 중 오류가 발생했습니다."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse 는 첫 번째 검증 실패를 대표로 AppError 를 만듭니다.
func NewValidationErrorResponse(validationErrors validator.ValidationErrors) *model.AppError {
	firstErr := validationErrors[0]
	translatedMsg := firstErr.Translate(Trans)
	return model.NewAppError(
		"VALIDATION_ERROR",
		translatedMsg,
		firstErr.Field(), // json 태그 기준 필드명
		model.ErrInvalidInput,
	)
}
