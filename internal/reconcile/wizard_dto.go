// internal/reconcile/wizard_dto.go
package reconcile

import "github.com/newrise0410/piano-academy-app-sub000/internal/model"

// 마법사 단계에서 취할 수 있는 행동
const (
	ResolveActionAdd    = "add"    // 현재 항목을 교재로 등록
	ResolveActionSkip   = "skip"   // 현재 항목을 건너뛰기
	ResolveActionCancel = "cancel" // 남은 항목 전체 건너뛰기
)

// ResolveRequest 는 미등록 교재 해결 마법사의 한 단계 요청입니다.
// 서버는 마법사 상태를 보관하지 않으므로 상태를 요청에 실어 보냅니다.
type ResolveRequest struct {
	Wizard   WizardState                `json:"wizard" validate:"required"`
	Action   string                     `json:"action" validate:"required,oneof=add skip cancel"`
	Material *model.PostMaterialRequest `json:"material,omitempty"`
}

// ResolveResponse 는 한 단계 처리 후의 마법사 상태입니다. Done 이 true 가 되면
// 마법사를 닫습니다. Result 는 add 로 교재가 등록돼 대조를 다시 수행한 경우에만
// 채워집니다.
type ResolveResponse struct {
	Wizard WizardState `json:"wizard"`
	Done   bool        `json:"done"`
	Result *Result     `json:"result,omitempty"`
}
