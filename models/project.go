package models

import "time"

// Project is a portfolio project entry.
type Project struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnail    string     `json:"thumbnail"`
	ProjectURL   string     `json:"project_url"`
	GithubURL    string     `json:"github_url"`
	Featured     bool       `json:"featured"`
	DisplayOrder int        `json:"display_order"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (p Project) GetID() int64      { return p.ID }
func (p Project) GetOwnerID() int64 { return p.UserID }
