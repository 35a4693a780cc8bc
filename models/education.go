package models

import "time"

// Education is an entry in the education history of a portfolio.
type Education struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	Institution       string     `json:"institution"`
	Degree            string     `json:"degree"`
	FieldOfStudy      string     `json:"field_of_study"`
	Description       string     `json:"description"`
	Location          string     `json:"location"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CurrentlyStudying bool       `json:"currently_studying"`
	DisplayOrder      int        `json:"display_order"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (e Education) GetID() int64      { return e.ID }
func (e Education) GetOwnerID() int64 { return e.UserID }
