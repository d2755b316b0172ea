// internal/model/material.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 교재 수준/분류의 정식 식별자. DB 에 문자열로 저장되며 화면 표시는 클라이언트의
// 다국어 리소스에 맡깁니다.
const (
	MaterialLevelBeginner     = "beginner"
	MaterialLevelIntermediate = "intermediate"
	MaterialLevelAdvanced     = "advanced"

	MaterialCategoryPiano     = "piano"
	MaterialCategoryTheory    = "theory"
	MaterialCategoryScore     = "score"
	MaterialCategoryTechnique = "technique"
	MaterialCategoryOther     = "other"
)

// MaterialLevels 는 허용되는 수준 식별자 전체 집합입니다.
var MaterialLevels = []string{
	MaterialLevelBeginner,
	MaterialLevelIntermediate,
	MaterialLevelAdvanced,
}

// MaterialCategories 는 허용되는 분류 식별자 전체 집합입니다.
var MaterialCategories = []string{
	MaterialCategoryPiano,
	MaterialCategoryTheory,
	MaterialCategoryScore,
	MaterialCategoryTechnique,
	MaterialCategoryOther,
}

// Material 은 학원 단위 교재 카탈로그의 항목입니다.
type Material struct {
	MaterialID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"material_id"`
	AcademyID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Publisher   string         `json:"publisher"`
	Level       string         `gorm:"type:varchar(20);not null;default:'beginner'" json:"level"`
	Category    string         `gorm:"type:varchar(20);not null;default:'piano'" json:"category"`
	Description string         `json:"description"`
	TotalUnits  int            `json:"total_units"` // 총 페이지/곡 수. 0 이면 진도율 계산 생략
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Material) TableName() string {
	return "materials"
}

// 교재 등록 요청 DTO. 미등록 교재 해결 마법사도 같은 DTO 를 사용합니다.
type PostMaterialRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Publisher   string `json:"publisher" validate:"omitempty,max=100"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Category    string `json:"category" validate:"required,oneof=piano theory score technique other"`
	Description string `json:"description" validate:"omitempty,max=500"`
	TotalUnits  int    `json:"total_units" validate:"omitempty,gte=0"`
}

// 교재 수정 요청 DTO
type PutMaterialRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Publisher   string `json:"publisher" validate:"omitempty,max=100"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Category    string `json:"category" validate:"required,oneof=piano theory score technique other"`
	Description string `json:"description" validate:"omitempty,max=500"`
	TotalUnits  int    `json:"total_units" validate:"omitempty,gte=0"`
}
