package dto

import "time"

type RegisterRequest struct {
	EventID uint `json:"event_id" binding:"required"`
}

// RegistrationView joins the student, event and college display fields onto
// the registration row.
type RegistrationView struct {
	ID           uint      `json:"id"`
	StudentID    uint      `json:"student_id"`
	EventID      uint      `json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	EventName    string    `json:"event_name"`
	EventDate    time.Time `json:"event_date"`
	CollegeName  string    `json:"college_name"`
}
