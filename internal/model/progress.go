// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord 는 원생×교재 단위의 최신 진도 상태입니다.
type ProgressRecord struct {
	ProgressID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AcademyID               uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID               uuid.UUID `gorm:"type:uuid;not null;index:idx_student_material,unique"` // 복합 유니크 인덱스의 일부
	MaterialID              uuid.UUID `gorm:"type:uuid;not null;index:idx_student_material,unique"` // 복합 유니크 인덱스의 일부
	Position                string    `gorm:"type:varchar(100)"`                                    // 마지막으로 추출된 위치 (예: "60번")
	Percent                 int       `gorm:"not null;default:0"`
	LastAppliedLessonNoteID uuid.UUID `gorm:"type:uuid"`
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// 연관 (Preload 용)
	Material *Material `gorm:"foreignKey:MaterialID;references:MaterialID" json:"-"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}

// ProgressApplication 은 (원생, 교재, 알림장) 적용 이력 한 건입니다.
// 복합 기본키 자체가 멱등성 키 역할을 하며, 행이 존재하면 같은 갱신을
// 다시 적용하지 않습니다.
type ProgressApplication struct {
	StudentID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LessonNoteID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppliedAt    time.Time `gorm:"not null"`
}

func (ProgressApplication) TableName() string {
	return "progress_applications"
}

// ProgressRecordResponse 는 원생 진도 조회 응답 항목입니다.
type ProgressRecordResponse struct {
	MaterialID    uuid.UUID `json:"material_id"`
	MaterialTitle string    `json:"material_title"`
	Position      string    `json:"position"`
	Percent       int       `json:"percent"`
	UpdatedAt     time.Time `json:"updated_at"`
}
