// internal/reconcile/matcher.go
package reconcile

import (
	"strings"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
)

// Match 는 언급 하나를 학원 카탈로그와 대조합니다. 찾지 못하면 nil 을 반환합니다.
//
// 단계: (1) 대소문자 무시 완전 일치 → (2) 부분 문자열 포함(양방향) → (3) 미등록.
// 부분 일치가 여러 건이면 제목 길이가 언급 길이에 가장 가까운 것을 고르고,
// 그래도 같으면 카탈로그 순서가 빠른 것을 고릅니다. 같은 입력은 항상 같은
// 결과를 내야 재시도가 안전하므로, 어느 단계에서도 비결정적 선택을 하지
// 않습니다.
func Match(mention Mention, catalog []model.Material) *model.Material {
	name := strings.ToLower(mention.NormalizedText)
	if name == "" {
		return nil
	}

	// 1. 완전 일치
	for i := range catalog {
		if strings.ToLower(catalog[i].Title) == name {
			return &catalog[i]
		}
	}

	// 2. 부분 일치. 언급이 제목을 품거나("체르니 30-1" ⊃ "체르니"),
	// 제목이 언급을 품는("체르니 30-1" ⊃ "체르니") 양방향을 허용한다.
	// 길이 비교는 바이트가 아니라 문자 수 기준. (한글 1자 = 3바이트)
	best := -1
	bestDiff := 0
	nameLen := len([]rune(name))
	for i := range catalog {
		title := strings.ToLower(catalog[i].Title)
		if title == "" {
			continue
		}
		if !strings.Contains(name, title) && !strings.Contains(title, name) {
			continue
		}
		diff := len([]rune(title)) - nameLen
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	if best >= 0 {
		return &catalog[best]
	}

	return nil
}
