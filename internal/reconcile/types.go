// internal/reconcile/types.go
package reconcile

import "github.com/google/uuid"

// Mention 은 진도 원문에서 추출한 교재 언급 한 건입니다. 대조 전의 일시적인
// 값으로, 호출 한 번의 수명만 가집니다.
type Mention struct {
	RawText        string // 구분자로 잘라낸 원문 그대로 (공백 정리만 수행)
	NormalizedText string // 위치 토큰을 떼어낸 교재명 부분
	Position       string // 끝에서 분리한 위치 토큰 (예: "60번", "30-1"). 없으면 빈 문자열
}

// Unknown 은 카탈로그에서 찾지 못한 언급입니다. SuggestedCategory 는 키워드
// 휴리스틱이 제안하는 값일 뿐 권위를 갖지 않습니다.
type Unknown struct {
	Name              string `json:"name"`
	SuggestedCategory string `json:"suggested_category"`
}

// UpdatedItem 은 진도 갱신기가 실제로 기록한 항목입니다.
type UpdatedItem struct {
	MaterialID    uuid.UUID `json:"material_id"`
	MaterialTitle string    `json:"material_title"`
	Position      string    `json:"position"`
	Percent       int       `json:"percent"`
}

// Result 는 호출자(알림장 화면)에 돌려주는 대조 결과 계약입니다.
// UnknownTextbooks 가 비어 있지 않으면 미등록 교재 해결 마법사를 띄워야 합니다.
type Result struct {
	UpdatedItems     []UpdatedItem `json:"updated_items"`
	UnknownTextbooks []Unknown     `json:"unknown_textbooks"`
}

// WizardState 는 미등록 교재 해결 마법사의 상태 기계입니다. UI 상태에 숨기지
// 않고 요청/응답으로 명시적으로 주고받습니다.
type WizardState struct {
	Items []Unknown `json:"items"`
	Index int       `json:"index"`
}

func NewWizard(items []Unknown) *WizardState {
	return &WizardState{Items: items, Index: 0}
}

// Current 는 현재 처리 중인 미등록 항목을 반환합니다. 모두 소진했으면 false.
func (w *WizardState) Current() (Unknown, bool) {
	if w.Index < 0 || w.Index >= len(w.Items) {
		return Unknown{}, false
	}
	return w.Items[w.Index], true
}

// Advance 는 다음 항목으로 진행합니다. 등록 성공 또는 건너뛰기 시에만 호출합니다.
func (w *WizardState) Advance() {
	if w.Index < len(w.Items) {
		w.Index++
	}
}

// Cancel 은 남은 항목 전체를 건너뛴 것과 동일하게 처리합니다. 이미 등록된
// 교재를 되돌리지는 않습니다.
func (w *WizardState) Cancel() {
	w.Index = len(w.Items)
}

// Done 은 마법사가 완료(Idle 복귀) 상태인지 반환합니다.
func (w *WizardState) Done() bool {
	return w.Index >= len(w.Items)
}
