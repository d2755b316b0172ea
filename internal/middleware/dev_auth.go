// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/webutil"

	"github.com/google/uuid"
)

// DevAcademyContextMiddleware 는 개발용 미들웨어입니다. X-Academy-ID 헤더의
// UUID 를 검증 없이 컨텍스트에 싣습니다. auth.enabled=false 일 때만 사용합니다.
func DevAcademyContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		academyIDStr := r.Header.Get("X-Academy-ID")
		if academyIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Academy-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Academy-ID 헤더가 필요합니다.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		academyID, err := uuid.Parse(academyIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Academy-ID format", "value", academyIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Academy-ID 형식이 올바르지 않습니다.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		// DB 존재 확인은 생략
		ctx := context.WithValue(r.Context(), model.AcademyIDKey, academyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
