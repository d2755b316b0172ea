// internal/llm/mock.go
package llm

import "context"

// MockProvider 는 테스트용 구현입니다.
type MockProvider struct {
	CompleteFunc func(ctx context.Context, system, prompt string) (string, error)
	Calls        int
}

func (m *MockProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.Calls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, prompt)
	}
	return prompt, nil
}
