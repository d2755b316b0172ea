// internal/model/lesson_note.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonNote 는 선생님이 수업 후 작성하는 알림장입니다. Progress 원문이 진도
// 추출/대조 파이프라인의 유일한 입력이 됩니다.
type LessonNote struct {
	LessonNoteID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"lesson_note_id"`
	AcademyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	StudentID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"student_id"`
	StudentName  string         `gorm:"not null" json:"student_name"`
	Date         time.Time      `gorm:"not null" json:"date"`
	Progress     string         `json:"progress"` // 자유 서술 진도 (예: "체르니 30-1, 바이엘 60번")
	Homework     string         `json:"homework"`
	Memo         string         `json:"memo"`
	LearningStep string         `json:"learning_step"`
	IsPublic     bool           `gorm:"default:true" json:"is_public"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LessonNote) TableName() string {
	return "lesson_notes"
}

// 알림장 작성 요청 DTO
type PostLessonNoteRequest struct {
	Date         time.Time `json:"date" validate:"required"`
	Progress     string    `json:"progress" validate:"omitempty,max=2000"`
	Homework     string    `json:"homework" validate:"omitempty,max=2000"`
	Memo         string    `json:"memo" validate:"omitempty,max=2000"`
	LearningStep string    `json:"learning_step" validate:"omitempty,max=100"`
	IsPublic     *bool     `json:"is_public,omitempty"`
}

// 알림장 수정 요청 DTO
type PutLessonNoteRequest struct {
	Date         time.Time `json:"date" validate:"required"`
	Progress     string    `json:"progress" validate:"omitempty,max=2000"`
	Homework     string    `json:"homework" validate:"omitempty,max=2000"`
	Memo         string    `json:"memo" validate:"omitempty,max=2000"`
	LearningStep string    `json:"learning_step" validate:"omitempty,max=100"`
	IsPublic     *bool     `json:"is_public,omitempty"`
}

// 문장 다듬기 요청 DTO
type PolishTextRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
	Tone string `json:"tone" validate:"omitempty,oneof=polite friendly formal"`
}

type PolishTextResponse struct {
	Text string `json:"text"`
}
