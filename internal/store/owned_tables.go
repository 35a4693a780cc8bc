package store

import (
	"github.com/MKhiriev/go-portfolio/models"
)

// ownedTable describes how one owned resource kind maps onto its table.
//
// columns lists the writable columns in the order produced by values. fields
// returns scan destinations for id, user_id, every column, created_at and
// updated_at, in that order.
type ownedTable[T models.OwnedResource] struct {
	name    string
	columns []string
	values  func(T) []any
	fields  func(*T) []any

	// visibility is a boolean column that hides rows from public reads.
	// Empty when every row of the kind is public.
	visibility string
}

func (t ownedTable[T]) selectColumns() []string {
	cols := make([]string, 0, len(t.columns)+4)
	cols = append(cols, "id", "user_id")
	cols = append(cols, t.columns...)
	return append(cols, "created_at", "updated_at")
}

var projectsTable = ownedTable[models.Project]{
	name: "projects",
	columns: []string{"title", "description", "thumbnail", "project_url", "github_url",
		"featured", "display_order", "start_date", "end_date"},
	values: func(p models.Project) []any {
		return []any{p.Title, p.Description, p.Thumbnail, p.ProjectURL, p.GithubURL,
			p.Featured, p.DisplayOrder, p.StartDate, p.EndDate}
	},
	fields: func(p *models.Project) []any {
		return []any{&p.ID, &p.UserID, &p.Title, &p.Description, &p.Thumbnail, &p.ProjectURL, &p.GithubURL,
			&p.Featured, &p.DisplayOrder, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt}
	},
}

var userSkillsTable = ownedTable[models.UserSkill]{
	name:    "user_skills",
	columns: []string{"skill_id", "proficiency", "years_experience", "display_order"},
	values: func(s models.UserSkill) []any {
		return []any{s.SkillID, s.Proficiency, s.YearsExperience, s.DisplayOrder}
	},
	fields: func(s *models.UserSkill) []any {
		return []any{&s.ID, &s.UserID, &s.SkillID, &s.Proficiency, &s.YearsExperience, &s.DisplayOrder,
			&s.CreatedAt, &s.UpdatedAt}
	},
}

var educationTable = ownedTable[models.Education]{
	name: "education",
	columns: []string{"institution", "degree", "field_of_study", "description", "location",
		"start_date", "end_date", "currently_studying", "display_order"},
	values: func(e models.Education) []any {
		return []any{e.Institution, e.Degree, e.FieldOfStudy, e.Description, e.Location,
			e.StartDate, e.EndDate, e.CurrentlyStudying, e.DisplayOrder}
	},
	fields: func(e *models.Education) []any {
		return []any{&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.Description, &e.Location,
			&e.StartDate, &e.EndDate, &e.CurrentlyStudying, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt}
	},
}

var experienceTable = ownedTable[models.WorkExperience]{
	name: "work_experience",
	columns: []string{"company", "position", "description", "location",
		"start_date", "end_date", "current_job", "display_order"},
	values: func(w models.WorkExperience) []any {
		return []any{w.Company, w.Position, w.Description, w.Location,
			w.StartDate, w.EndDate, w.CurrentJob, w.DisplayOrder}
	},
	fields: func(w *models.WorkExperience) []any {
		return []any{&w.ID, &w.UserID, &w.Company, &w.Position, &w.Description, &w.Location,
			&w.StartDate, &w.EndDate, &w.CurrentJob, &w.DisplayOrder, &w.CreatedAt, &w.UpdatedAt}
	},
}

var socialLinksTable = ownedTable[models.SocialLink]{
	name:    "social_links",
	columns: []string{"platform", "url", "icon", "is_visible", "display_order"},
	values: func(s models.SocialLink) []any {
		return []any{s.Platform, s.URL, s.Icon, s.IsVisible, s.DisplayOrder}
	},
	fields: func(s *models.SocialLink) []any {
		return []any{&s.ID, &s.UserID, &s.Platform, &s.URL, &s.Icon, &s.IsVisible, &s.DisplayOrder,
			&s.CreatedAt, &s.UpdatedAt}
	},
	visibility: "is_visible",
}

var sectionsTable = ownedTable[models.PortfolioSection]{
	name:    "portfolio_sections",
	columns: []string{"section_type", "title", "description", "custom_content", "is_visible", "display_order"},
	values: func(s models.PortfolioSection) []any {
		return []any{s.SectionType, s.Title, s.Description, s.CustomContent, s.IsVisible, s.DisplayOrder}
	},
	fields: func(s *models.PortfolioSection) []any {
		return []any{&s.ID, &s.UserID, &s.SectionType, &s.Title, &s.Description, &s.CustomContent,
			&s.IsVisible, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt}
	},
	visibility: "is_visible",
}
