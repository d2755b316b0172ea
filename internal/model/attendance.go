// internal/model/attendance.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 출결 상태
const (
	AttendanceStatusNone    = "none"
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusMakeup  = "makeup"
)

// AttendanceStatuses 는 허용되는 출결 상태 집합입니다.
var AttendanceStatuses = []string{
	AttendanceStatusNone,
	AttendanceStatusPresent,
	AttendanceStatusAbsent,
	AttendanceStatusMakeup,
}

// Attendance 는 원생의 일자별 출결 기록입니다. (원생, 일자) 당 한 건.
type Attendance struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AcademyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index:idx_student_date,unique"`
	Date         time.Time `gorm:"type:date;not null;index:idx_student_date,unique"`
	Status       string    `gorm:"type:varchar(10);not null;default:'none'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}

// 출결 변경 요청 DTO
type PutAttendanceRequest struct {
	Date   time.Time `json:"date" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=none present absent makeup"`
}

// PutAttendanceResponse 는 출결 변경 결과와 수강권 차감 결과를 함께 반환합니다.
// 횟수제 원생이 아니거나 차감이 일어나지 않은 경우 Ticket 은 null 입니다.
type PutAttendanceResponse struct {
	StudentID uuid.UUID               `json:"student_id"`
	Date      time.Time               `json:"date"`
	Status    string                  `json:"status"`
	Ticket    *TicketConsumedResponse `json:"ticket,omitempty"`
}

type TicketConsumedResponse struct {
	NewCount int    `json:"new_count"`
	Warning  string `json:"warning"` // none | low | exhausted
}
