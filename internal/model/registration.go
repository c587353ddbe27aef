package model

import "time"

type Registration struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StudentID    uint      `gorm:"not null;uniqueIndex:idx_registrations_student_event" json:"student_id"`
	Student      *User     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	EventID      uint      `gorm:"not null;uniqueIndex:idx_registrations_student_event" json:"event_id"`
	Event        *Event    `json:"event,omitempty"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
}

func (Registration) TableName() string { return "registrations" }
