// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware 는 Authorization 헤더의 Bearer 토큰을 검증하고
// 학원 ID 를 컨텍스트에 싣습니다.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization 헤더가 필요합니다.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" 형식 검증
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization 헤더 형식이 올바르지 않습니다.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.Parse 가 서명과 만료(exp)를 함께 검증한다
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "토큰이 유효하지 않습니다.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "토큰이 유효하지 않습니다.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "토큰에 계정 정보가 없습니다.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			academyID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "토큰의 계정 정보가 올바르지 않습니다.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.AcademyIDKey, academyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAcademyIDFromContext 는 인증 미들웨어가 실어 둔 학원 ID 를 꺼냅니다.
func GetAcademyIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.AcademyIDKey).(uuid.UUID)
	if !ok {
		// 미들웨어가 적용되지 않았거나 잘못 동작한 내부 오류
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "컨텍스트에서 계정 정보를 가져오지 못했습니다.", "", model.ErrInternalServer)
	}
	return value, nil
}
