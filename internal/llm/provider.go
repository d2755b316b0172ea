// internal/llm/provider.go
package llm

import "context"

// Provider 는 문장 다듬기에 쓰는 텍스트 생성 계약입니다. 구현을 추상화해 두면
// 테스트에서 실제 API 호출 없이 서비스 로직을 검증할 수 있습니다.
type Provider interface {
	// Complete 은 시스템 프롬프트와 사용자 입력으로 텍스트 한 개를 생성합니다.
	Complete(ctx context.Context, system, prompt string) (string, error)
}
