package model

import "time"

// Feedback is one-to-one with Registration, same constraint scheme as
// Attendance.
type Feedback struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	RegistrationID uint          `gorm:"not null;uniqueIndex" json:"registration_id"`
	Registration   *Registration `json:"registration,omitempty"`
	Rating         int           `gorm:"not null" json:"rating"`
	Comment        *string       `gorm:"type:text" json:"comment"`
	SubmittedAt    time.Time     `gorm:"autoCreateTime" json:"submitted_at"`
}

func (Feedback) TableName() string { return "feedback" }
