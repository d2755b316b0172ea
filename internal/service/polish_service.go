// internal/service/polish_service.go
package service

import (
	"context"
	"fmt"

	"github.com/newrise0410/piano-academy-app-sub000/internal/llm"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
)

// PolishService 는 알림장 문장을 학부모에게 보내기 좋은 어조로 다듬습니다.
type PolishService interface {
	Polish(ctx context.Context, req *model.PolishTextRequest) (*model.PolishTextResponse, error)
}

type polishService struct {
	provider llm.Provider
}

func NewPolishService(provider llm.Provider) PolishService {
	return &polishService{provider: provider}
}

const polishSystemPrompt = "당신은 피아노 학원 선생님의 알림장 작성을 돕는 비서입니다. " +
	"입력 문장의 의미를 바꾸지 말고, 학부모에게 보내기 적절한 한국어로 다듬어 주세요. " +
	"다듬은 문장만 출력하고 다른 설명은 붙이지 마세요."

var toneInstructions = map[string]string{
	"polite":   "정중한 존댓말로 다듬어 주세요.",
	"friendly": "친근하고 부드러운 말투로 다듬어 주세요.",
	"formal":   "격식 있는 문어체로 다듬어 주세요.",
}

func (s *polishService) Polish(ctx context.Context, req *model.PolishTextRequest) (*model.PolishTextResponse, error) {
	logger := middleware.GetLogger(ctx)

	if s.provider == nil {
		return nil, model.NewAppError("FEATURE_DISABLED", "문장 다듬기 기능이 설정되지 않았습니다.", "", model.ErrInvalidInput)
	}

	prompt := req.Text
	if inst, ok := toneInstructions[req.Tone]; ok {
		prompt = fmt.Sprintf("%s\n\n%s", inst, req.Text)
	}

	polished, err := s.provider.Complete(ctx, polishSystemPrompt, prompt)
	if err != nil {
		logger.Error("Failed to polish text", "error", err)
		return nil, model.NewAppError("POLISH_FAILED", "문장 다듬기에 실패했습니다. 잠시 후 다시 시도해 주세요.", "", err)
	}

	return &model.PolishTextResponse{Text: polished}, nil
}
