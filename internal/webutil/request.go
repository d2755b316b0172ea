// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"net/http"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
)

// DecodeJSONBody 는 요청 본문을 디코드합니다.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}
