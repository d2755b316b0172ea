// internal/config/constants.go
package config

// 애플리케이션 정보
const (
	AppName    = "piano-academy-server"
	AppVersion = "1.3.0"
)

// 기본 설정값
const (
	DefaultServerPort             = ":8080"
	DefaultLogLevel               = "info"
	DefaultJWTExpiresInHours      = 72
	DefaultTicketExpiryNoticeDays = 7
	DefaultAnthropicModel         = "claude-haiku-4-5-20251001"
	DefaultAnthropicMaxTokens     = 1024
	DefaultTicketSweepSpec        = "0 9 * * *" // 매일 오전 9시
)
