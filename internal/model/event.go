package model

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Date        time.Time `gorm:"not null" json:"date"`
	CollegeID   uint      `gorm:"not null" json:"college_id"`
	College     *College  `json:"college,omitempty"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	Creator     *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Description *string   `gorm:"type:text" json:"description"`
	PosterURL   *string   `gorm:"type:text" json:"poster_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "events" }
