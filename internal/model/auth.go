// internal/model/auth.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LoginRequest 는 로그인 API 의 요청 본문
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse 는 로그인 성공 시의 응답
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// JWTCustomClaims 는 JWT 에 담는 커스텀 클레임(페이로드)
type JWTCustomClaims struct {
	jwt.RegisteredClaims // 표준 클레임 (iss, sub, exp 등)
}

// AccountVerificationToken 은 계정 활성화용 토큰 정보를 보관합니다.
type AccountVerificationToken struct {
	Token     string    `gorm:"primaryKey"`
	AcademyID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (AccountVerificationToken) TableName() string {
	return "account_verification_tokens"
}
