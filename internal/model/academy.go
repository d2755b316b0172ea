// internal/model/academy.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Academy 는 학원 계정(테넌트)을 표현합니다. 선생님 한 명이 하나의 학원 계정으로
// 로그인해 사용하는 구조입니다.
type Academy struct {
	AcademyID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"academy_id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	IsActive     bool           `gorm:"default:false" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Academy) TableName() string {
	return "academies"
}

type ContextKey string

const (
	AcademyIDKey ContextKey = "academyID"
)

// RegisterRequest 는 학원 계정 등록 API 의 요청 본문 (DTO)
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AcademyResponse 는 클라이언트에 반환하는 학원 계정 정보
type AcademyResponse struct {
	AcademyID uuid.UUID `json:"academy_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAcademyResponse(a *Academy) *AcademyResponse {
	return &AcademyResponse{
		AcademyID: a.AcademyID,
		Name:      a.Name,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}
