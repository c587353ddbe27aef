package dto

type CreateCollegeRequest struct {
	Name string `json:"name" binding:"required"`
}
