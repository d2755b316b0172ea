// internal/reconcile/extractor_test.go
package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		text string
		want []Mention
	}{
		{
			name: "정상계: 쉼표 구분 두 건, 위치 토큰 분리",
			text: "체르니 30-1, 바이엘 60번",
			want: []Mention{
				{RawText: "체르니 30-1", NormalizedText: "체르니", Position: "30-1"},
				{RawText: "바이엘 60번", NormalizedText: "바이엘", Position: "60번"},
			},
		},
		{
			name: "정상계: 전각 구분자와 줄바꿈",
			text: "하농 12번、소나티네 5페이지\n동요집",
			want: []Mention{
				{RawText: "하농 12번", NormalizedText: "하농", Position: "12번"},
				{RawText: "소나티네 5페이지", NormalizedText: "소나티네", Position: "5페이지"},
				{RawText: "동요집", NormalizedText: "동요집", Position: ""},
			},
		},
		{
			name: "정상계: 교재명과 위치 사이 공백 없음",
			text: "바이엘60번",
			want: []Mention{
				{RawText: "바이엘60번", NormalizedText: "바이엘", Position: "60번"},
			},
		},
		{
			name: "정상계: 빗금 구분",
			text: "체르니 100/바이엘 60번",
			want: []Mention{
				{RawText: "체르니 100", NormalizedText: "체르니", Position: "100"},
				{RawText: "바이엘 60번", NormalizedText: "바이엘", Position: "60번"},
			},
		},
		{
			name: "정상계: 같은 교재 두 번 언급은 병합하지 않음",
			text: "바이엘 10번, 바이엘 11번",
			want: []Mention{
				{RawText: "바이엘 10번", NormalizedText: "바이엘", Position: "10번"},
				{RawText: "바이엘 11번", NormalizedText: "바이엘", Position: "11번"},
			},
		},
		{
			name: "정상계: 내부 공백 정리",
			text: "  체르니   100  ",
			want: []Mention{
				{RawText: "체르니 100", NormalizedText: "체르니", Position: "100"},
			},
		},
		{
			name: "경계계: 숫자만 있는 구간은 위치로 떼지 않음",
			text: "123",
			want: []Mention{
				{RawText: "123", NormalizedText: "123", Position: ""},
			},
		},
		{
			name: "경계계: 빈 구간은 조용히 버림",
			text: "바이엘 3번, , ,\n",
			want: []Mention{
				{RawText: "바이엘 3번", NormalizedText: "바이엘", Position: "3번"},
			},
		},
		{
			name: "경계계: 빈 입력",
			text: "",
			want: nil,
		},
		{
			name: "경계계: 구두점만 있는 입력",
			text: " , 、 . ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_Extract_OrderPreserved(t *testing.T) {
	e := NewExtractor(nil)
	got := e.Extract("다장조 스케일, 체르니 30-2, 하농 1번")
	require.Len(t, got, 3)
	assert.Equal(t, "다장조 스케일", got[0].NormalizedText)
	assert.Equal(t, "체르니", got[1].NormalizedText)
	assert.Equal(t, "하농", got[2].NormalizedText)
}

func TestPositionGrammar_CustomPattern(t *testing.T) {
	// 문법은 하드코딩이 아니라 패턴 추가로 확장한다
	g := NewPositionGrammar(`\d+\s*마디`, `\d+\s*번`)
	e := NewExtractor(g)

	got := e.Extract("바이엘 8마디")
	require.Len(t, got, 1)
	assert.Equal(t, "바이엘", got[0].NormalizedText)
	assert.Equal(t, "8마디", got[0].Position)
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		position string
		want     int
		ok       bool
	}{
		{"60번", 60, true},
		{"30-1", 30, true},
		{"5페이지", 5, true},
		{"", 0, false},
		{"페이지", 0, false},
	}
	for _, tt := range tests {
		got, ok := LeadingNumber(tt.position)
		assert.Equal(t, tt.ok, ok, tt.position)
		assert.Equal(t, tt.want, got, tt.position)
	}
}

func TestComputePercent(t *testing.T) {
	tests := []struct {
		name       string
		position   string
		totalUnits int
		prev       int
		want       int
	}{
		{"정상계: 반올림 계산", "60번", 106, 10, 57},
		{"정상계: 총 단위 수 초과는 100 으로 고정", "200번", 106, 10, 100},
		{"경계계: 총 단위 수 미설정이면 이전 값 유지", "60번", 0, 42, 42},
		{"경계계: 숫자 없는 위치면 이전 값 유지", "페이지", 106, 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePercent(tt.position, tt.totalUnits, tt.prev))
		})
	}
}
