package models

import "time"

// Skill is an entry of the shared, read-only skill catalog.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// Proficiency bounds for a skill assignment.
const (
	MinProficiency     = 1
	MaxProficiency     = 5
	DefaultProficiency = 3
)

// UserSkill assigns a catalog skill to a portfolio owner. A skill can be
// assigned to the same user once.
type UserSkill struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	SkillID         int64     `json:"skill_id"`
	Proficiency     int       `json:"proficiency"`
	YearsExperience int       `json:"years_experience"`
	DisplayOrder    int       `json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s UserSkill) GetID() int64      { return s.ID }
func (s UserSkill) GetOwnerID() int64 { return s.UserID }
