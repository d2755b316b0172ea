// internal/middleware/logging.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey 는 컨텍스트에 로거를 담기 위한 키입니다.
type logCtxKey struct{}

// sensitiveHeaders 는 로그 출력 시 값을 마스킹할 헤더 목록입니다 (소문자).
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// statusWriter 는 http.ResponseWriter 를 감싸 상태 코드를 기록합니다.
type statusWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sw *statusWriter) WriteHeader(statusCode int) {
	sw.statusCode = statusCode
	sw.ResponseWriter.WriteHeader(statusCode)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.written += n
	return n, err
}

// LoggingMiddleware 는 요청 단위 로거를 컨텍스트에 싣고 접근 로그를 남깁니다.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			ctx := context.WithValue(r.Context(), logCtxKey{}, requestLogger)
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r.WithContext(ctx))

			requestLogger.Info("Request completed",
				slog.Int("status", sw.statusCode),
				slog.Int("bytes", sw.written),
				slog.Duration("duration", time.Since(startTime)),
				slog.Any("headers", maskHeaders(r.Header)),
			)
		})
	}
}

// GetLogger 는 컨텍스트의 요청 로거를 꺼냅니다. 없으면 기본 로거를 반환합니다.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger 는 테스트 등에서 임의의 로거를 컨텍스트에 싣습니다.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// maskHeaders 는 민감한 헤더 값을 가린 복사본을 만듭니다.
func maskHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "***"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}
