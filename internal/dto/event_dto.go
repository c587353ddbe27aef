package dto

import "time"

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	CollegeID   uint    `json:"college_id" binding:"required"`
	Description *string `json:"description"`
}

type UpdateEventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	CollegeID   uint    `json:"college_id" binding:"required"`
	Description *string `json:"description"`
}

type EventFilter struct {
	Query string `form:"q"`
}

// EventView is the list/get read model: the event row enriched with the
// denormalized parent names.
type EventView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	CollegeID     uint      `json:"college_id"`
	CreatedBy     uint      `json:"created_by"`
	Description   *string   `json:"description"`
	PosterURL     *string   `json:"poster_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CollegeName   string    `json:"college_name"`
	CreatedByName string    `json:"created_by_name,omitempty"`
}

// StudentEventView adds the registration timestamp for the
// /students/:id/events listing.
type StudentEventView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
	CollegeID    uint      `json:"college_id"`
	CreatedBy    uint      `json:"created_by"`
	Description  *string   `json:"description"`
	PosterURL    *string   `json:"poster_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	CollegeName  string    `json:"college_name"`
	RegisteredAt time.Time `json:"registered_at"`
}
