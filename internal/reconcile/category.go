// internal/reconcile/category.go
package reconcile

import (
	"strings"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
)

// categoryKeywords 는 교재명 키워드 → 분류 제안 테이블입니다. 위에서부터
// 먼저 걸리는 항목이 이깁니다. 새 키워드는 여기에만 추가하면 됩니다.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"체르니", model.MaterialCategoryTechnique},
	{"하농", model.MaterialCategoryTechnique},
	{"에튀드", model.MaterialCategoryTechnique},
	{"연습곡", model.MaterialCategoryTechnique},
	{"스케일", model.MaterialCategoryTechnique},
	{"바이엘", model.MaterialCategoryPiano},
	{"소나티네", model.MaterialCategoryPiano},
	{"소나타", model.MaterialCategoryPiano},
	{"부르크뮐러", model.MaterialCategoryPiano},
	{"피아노", model.MaterialCategoryPiano},
	{"이론", model.MaterialCategoryTheory},
	{"악전", model.MaterialCategoryTheory},
	{"청음", model.MaterialCategoryTheory},
	{"악보", model.MaterialCategoryScore},
	{"명곡", model.MaterialCategoryScore},
	{"동요", model.MaterialCategoryScore},
}

// SuggestCategory 는 미등록 교재명에서 분류를 추정합니다. 어디까지나 등록
// 화면의 기본값 제안이며, 최종 결정은 선생님이 합니다.
func SuggestCategory(text string) string {
	lowered := strings.ToLower(text)
	for _, e := range categoryKeywords {
		if strings.Contains(lowered, e.keyword) {
			return e.category
		}
	}
	return model.MaterialCategoryOther
}
