package dto

import "time"

type MarkAttendanceRequest struct {
	RegistrationID uint   `json:"registration_id" binding:"required"`
	Status         string `json:"status" binding:"required,oneof=present absent late"`
}

type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=present absent late"`
}

type AttendanceView struct {
	ID             uint      `json:"id"`
	RegistrationID uint      `json:"registration_id"`
	Status         string    `json:"status"`
	MarkedAt       time.Time `json:"marked_at"`
	StudentID      uint      `json:"student_id"`
	EventID        uint      `json:"event_id"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email"`
	EventName      string    `json:"event_name"`
	EventDate      time.Time `json:"event_date"`
	CollegeName    string    `json:"college_name"`
}
