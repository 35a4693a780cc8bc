package models

import (
	"slices"
	"time"
)

// SectionType is the kind of block a PortfolioSection renders.
type SectionType string

const (
	SectionAbout      SectionType = "about"
	SectionProjects   SectionType = "projects"
	SectionSkills     SectionType = "skills"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionContact    SectionType = "contact"
	SectionCustom     SectionType = "custom"
)

var sectionTypes = []SectionType{
	SectionAbout, SectionProjects, SectionSkills, SectionExperience,
	SectionEducation, SectionContact, SectionCustom,
}

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	return slices.Contains(sectionTypes, t)
}

// PortfolioSection controls the layout of a public portfolio page.
type PortfolioSection struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	SectionType   SectionType `json:"section_type"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	CustomContent string      `json:"custom_content"`
	IsVisible     bool        `json:"is_visible"`
	DisplayOrder  int         `json:"display_order"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (s PortfolioSection) GetID() int64      { return s.ID }
func (s PortfolioSection) GetOwnerID() int64 { return s.UserID }
