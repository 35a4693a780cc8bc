package models

import "time"

// PortfolioSettings is the one-per-user appearance and visibility record.
// IsPublic decides whether anonymous callers may read the portfolio.
type PortfolioSettings struct {
	UserID         int64     `json:"user_id"`
	Theme          string    `json:"theme"`
	Layout         string    `json:"layout"`
	ColorPrimary   string    `json:"color_primary"`
	ColorSecondary string    `json:"color_secondary"`
	FontFamily     string    `json:"font_family"`
	IsPublic       bool      `json:"is_public"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultSettings returns the appearance defaults for userID with the given
// visibility.
func DefaultSettings(userID int64, public bool) PortfolioSettings {
	return PortfolioSettings{
		UserID:         userID,
		Theme:          "default",
		Layout:         "standard",
		ColorPrimary:   "#007bff",
		ColorSecondary: "#6c757d",
		FontFamily:     "Roboto, sans-serif",
		IsPublic:       public,
	}
}
