// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createRequest 는 테스트용 HTTP 요청을 만듭니다. academyID 가 nil 이 아니면
// 개발용 인증 헤더(X-Academy-ID)를 붙입니다.
func createRequest(t *testing.T, method, url string, body interface{}, academyID *uuid.UUID) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if academyID != nil {
		req.Header.Set("X-Academy-ID", academyID.String())
	}
	return req
}

// decodeErrorResponse 는 에러 응답 본문에서 에러 코드를 꺼냅니다.
func decodeErrorResponse(t *testing.T, body []byte) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	err := json.Unmarshal(body, &resp)
	require.NoError(t, err, "Failed to unmarshal error response body")
	return resp.Error
}
