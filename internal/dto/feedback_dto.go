package dto

import "time"

type SubmitFeedbackRequest struct {
	RegistrationID uint    `json:"registration_id" binding:"required"`
	Rating         int     `json:"rating" binding:"required,min=1,max=5"`
	Comment        *string `json:"comment"`
}

type UpdateFeedbackRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type FeedbackView struct {
	ID             uint      `json:"id"`
	RegistrationID uint      `json:"registration_id"`
	Rating         int       `json:"rating"`
	Comment        *string   `json:"comment"`
	SubmittedAt    time.Time `json:"submitted_at"`
	StudentID      uint      `json:"student_id"`
	EventID        uint      `json:"event_id"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email"`
	EventName      string    `json:"event_name"`
	EventDate      time.Time `json:"event_date"`
	CollegeName    string    `json:"college_name"`
}
