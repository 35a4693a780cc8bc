package models

import "time"

// WorkExperience is a position held by the portfolio owner.
type WorkExperience struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CurrentJob   bool       `json:"current_job"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (w WorkExperience) GetID() int64      { return w.ID }
func (w WorkExperience) GetOwnerID() int64 { return w.UserID }
