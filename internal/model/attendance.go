package model

import "time"

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance is one-to-one with Registration. The unique index backs the
// application-level duplicate check under concurrent marks.
type Attendance struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	RegistrationID uint          `gorm:"not null;uniqueIndex" json:"registration_id"`
	Registration   *Registration `json:"registration,omitempty"`
	Status         string        `gorm:"size:20;not null" json:"status"`
	MarkedAt       time.Time     `gorm:"autoCreateTime" json:"marked_at"`
}

func (Attendance) TableName() string { return "attendance" }
