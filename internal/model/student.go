// internal/model/student.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 수강권 종류
const (
	TicketTypeCount  = "count"  // 횟수제
	TicketTypePeriod = "period" // 기간제
)

// Student 는 학원에 등록된 원생입니다. CurrentBookLabel / ProgressPercent 는
// 진도 갱신기가 기록하는 비정규화 요약 값입니다.
type Student struct {
	StudentID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"student_id"`
	AcademyID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name             string         `gorm:"not null" json:"name"`
	Level            string         `gorm:"type:varchar(20);default:'beginner'" json:"level"`
	CurrentBookLabel string         `json:"current_book_label"`
	ProgressPercent  int            `json:"progress_percent"`
	TicketType       string         `gorm:"type:varchar(10);not null;default:'count'" json:"ticket_type"`
	TicketCount      int            `json:"ticket_count"`
	TicketStart      *time.Time     `json:"ticket_start,omitempty"`
	TicketEnd        *time.Time     `json:"ticket_end,omitempty"`
	ParentEmail      string         `json:"parent_email"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// 원생 등록 요청 DTO
type PostStudentRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Level       string     `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	TicketType  string     `json:"ticket_type" validate:"required,oneof=count period"`
	TicketCount int        `json:"ticket_count" validate:"omitempty,gte=0"`
	TicketStart *time.Time `json:"ticket_start,omitempty"`
	TicketEnd   *time.Time `json:"ticket_end,omitempty"`
	ParentEmail string     `json:"parent_email" validate:"omitempty,email"`
}

// 원생 수정 요청 DTO (부분 수정)
type PatchStudentRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Level       *string    `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	TicketType  *string    `json:"ticket_type,omitempty" validate:"omitempty,oneof=count period"`
	TicketCount *int       `json:"ticket_count,omitempty" validate:"omitempty,gte=0"`
	TicketStart *time.Time `json:"ticket_start,omitempty"`
	TicketEnd   *time.Time `json:"ticket_end,omitempty"`
	ParentEmail *string    `json:"parent_email,omitempty" validate:"omitempty,email"`
}
