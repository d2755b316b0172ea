// internal/reconcile/extractor.go
package reconcile

import (
	"regexp"
	"strconv"
	"strings"
)

// PositionGrammar 는 언급 끝의 위치 토큰을 판별하는 패턴 목록입니다.
// 원문 파싱 규칙이 완전히 고정돼 있지 않으므로, 새로운 표기는 패턴을
// 추가해서 확장합니다. 앞선 패턴이 우선합니다.
type PositionGrammar struct {
	patterns []*regexp.Regexp
}

// DefaultPositionGrammar 는 현재 관찰된 위치 표기를 모두 포함합니다:
// "30페이지", "12쪽", "60번", "30-1" 류의 권-번 표기, 그리고 끝의 숫자.
func DefaultPositionGrammar() *PositionGrammar {
	return NewPositionGrammar(
		`\d+\s*페이지`,
		`\d+\s*쪽`,
		`\d+\s*번`,
		`\d+(?:-\d+)+`,
		`\d+`,
	)
}

// NewPositionGrammar 는 각 패턴을 문자열 끝 기준으로 컴파일합니다.
// 교재명과 위치 사이 공백은 없어도 됩니다 ("바이엘60번").
// 잘못된 패턴은 프로그래밍 오류이므로 panic 합니다.
func NewPositionGrammar(exprs ...string) *PositionGrammar {
	g := &PositionGrammar{}
	for _, expr := range exprs {
		g.patterns = append(g.patterns, regexp.MustCompile(`(`+expr+`)$`))
	}
	return g
}

// Split 은 언급 문자열을 (교재명, 위치 토큰) 으로 분리합니다.
// 위치 토큰이 없으면 원문 전체가 교재명이 됩니다.
func (g *PositionGrammar) Split(text string) (title, position string) {
	for _, p := range g.patterns {
		loc := p.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		position = text[loc[2]:loc[3]]
		title = strings.TrimSpace(text[:loc[2]])
		if title == "" {
			// 숫자만 있는 언급은 교재명이 없으므로 분리하지 않는다
			return text, ""
		}
		return title, position
	}
	return text, ""
}

// LeadingNumber 는 위치 토큰 맨 앞의 숫자를 반환합니다. ("60번" → 60)
// 진도율 계산에만 쓰이는 보조 값입니다.
func LeadingNumber(position string) (int, bool) {
	i := 0
	for i < len(position) && position[i] >= '0' && position[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(position[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ComputePercent 는 위치 토큰과 교재 총 단위 수로 진도율을 추정합니다.
// 계산할 수 없으면 이전 값을 유지합니다. 표시용 값일 뿐 대조에는 쓰지 않습니다.
func ComputePercent(position string, totalUnits, prev int) int {
	if totalUnits <= 0 {
		return prev
	}
	n, ok := LeadingNumber(position)
	if !ok {
		return prev
	}
	if n > totalUnits {
		n = totalUnits
	}
	return (n*100 + totalUnits/2) / totalUnits
}

var mentionSeparators = func(r rune) bool {
	return r == ',' || r == '、' || r == '/' || r == '\n'
}

// 언급 양끝에서 정리할 구두점
const trimCutset = " \t\r.。·~-_"

// Extractor 는 자유 서술 진도 원문을 교재 언급 목록으로 분해합니다.
type Extractor struct {
	grammar *PositionGrammar
}

func NewExtractor(grammar *PositionGrammar) *Extractor {
	if grammar == nil {
		grammar = DefaultPositionGrammar()
	}
	return &Extractor{grammar: grammar}
}

// Extract 는 원문을 구분자로 자르고 각 구간에서 위치 토큰을 분리합니다.
// 교재명이 비는 구간은 조용히 버립니다. 순서는 원문 순서를 유지하고,
// 같은 교재를 두 번 언급한 경우도 각각 독립적으로 반환합니다. (한 알림장에서
// 같은 책을 다른 위치로 두 번 쓸 수 있음)
func (e *Extractor) Extract(text string) []Mention {
	var mentions []Mention
	for _, span := range strings.FieldsFunc(text, mentionSeparators) {
		raw := normalizeSpan(span)
		if raw == "" {
			continue
		}
		title, position := e.grammar.Split(raw)
		title = normalizeSpan(title)
		if title == "" {
			continue
		}
		mentions = append(mentions, Mention{
			RawText:        raw,
			NormalizedText: title,
			Position:       position,
		})
	}
	return mentions
}

// normalizeSpan 은 양끝 공백/구두점을 정리하고 내부 공백을 한 칸으로 접습니다.
func normalizeSpan(s string) string {
	s = strings.Trim(s, trimCutset)
	return strings.Join(strings.Fields(s), " ")
}
