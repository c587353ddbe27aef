package dto

import "time"

type CreateStudentRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	CollegeID uint   `json:"college_id" binding:"required"`
}

// StudentView is a user row with role=student plus its college name.
type StudentView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CollegeID   *uint     `json:"college_id"`
	CreatedAt   time.Time `json:"created_at"`
	CollegeName string    `json:"college_name"`
}
