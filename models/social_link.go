package models

import "time"

// SocialLink points to the owner's profile on another platform.
type SocialLink struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Platform     string    `json:"platform"`
	URL          string    `json:"url"`
	Icon         string    `json:"icon"`
	IsVisible    bool      `json:"is_visible"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s SocialLink) GetID() int64      { return s.ID }
func (s SocialLink) GetOwnerID() int64 { return s.UserID }
