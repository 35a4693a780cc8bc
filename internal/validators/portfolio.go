package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-portfolio/models"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit
	maxTitleLen    = 200
	maxURLLen      = 500
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	colorPattern    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// PortfolioValidator validates every payload accepted by the portfolio API.
type PortfolioValidator struct{}

func NewPortfolioValidator() Validator {
	return &PortfolioValidator{}
}

func (v *PortfolioValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var rules []rule

	switch value := obj.(type) {
	case models.User:
		rules = userRules(value)
	case *models.User:
		rules = userRules(*value)
	case models.Credentials:
		rules = credentialsRules(value)
	case *models.Credentials:
		rules = credentialsRules(*value)
	case models.ProfileUpdate:
		rules = profileRules(value)
	case *models.ProfileUpdate:
		rules = profileRules(*value)
	case models.PortfolioSettings:
		rules = settingsRules(value)
	case *models.PortfolioSettings:
		rules = settingsRules(*value)
	case models.Project:
		rules = projectRules(value)
	case *models.Project:
		rules = projectRules(*value)
	case models.UserSkill:
		rules = userSkillRules(value)
	case *models.UserSkill:
		rules = userSkillRules(*value)
	case models.Education:
		rules = educationRules(value)
	case *models.Education:
		rules = educationRules(*value)
	case models.WorkExperience:
		rules = experienceRules(value)
	case *models.WorkExperience:
		rules = experienceRules(*value)
	case models.SocialLink:
		rules = socialLinkRules(value)
	case *models.SocialLink:
		rules = socialLinkRules(*value)
	case models.PortfolioSection:
		rules = sectionRules(value)
	case *models.PortfolioSection:
		rules = sectionRules(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	return apply(rules, fields)
}

// rule is one named check. check returns "" when the value is acceptable.
type rule struct {
	field string
	check func() string
}

func apply(rules []rule, fields []string) error {
	for _, f := range fields {
		if !slices.ContainsFunc(rules, func(r rule) bool { return r.field == f }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	for _, r := range rules {
		if len(fields) > 0 && !slices.Contains(fields, r.field) {
			continue
		}
		if msg := r.check(); msg != "" {
			return fieldError(r.field, msg)
		}
	}

	return nil
}

func userRules(u models.User) []rule {
	return []rule{
		{"username", func() string { return username(u.Username) }},
		{"email", func() string { return email(u.Email, true) }},
		{"password", func() string { return password(u.Password) }},
		{"first_name", func() string { return maxLen(u.FirstName, 100) }},
		{"last_name", func() string { return maxLen(u.LastName, 100) }},
	}
}

func credentialsRules(c models.Credentials) []rule {
	return []rule{
		{"username", func() string { return required(c.Username) }},
		{"password", func() string { return required(c.Password) }},
	}
}

func profileRules(p models.ProfileUpdate) []rule {
	return []rule{
		{"email", func() string { return email(p.Email, true) }},
		{"first_name", func() string { return maxLen(p.FirstName, 100) }},
		{"last_name", func() string { return maxLen(p.LastName, 100) }},
		{"profile_image", func() string { return maxLen(p.ProfileImage, maxURLLen) }},
		{"job_title", func() string { return maxLen(p.JobTitle, 200) }},
		{"location", func() string { return maxLen(p.Location, 200) }},
	}
}

func settingsRules(s models.PortfolioSettings) []rule {
	return []rule{
		{"theme", func() string { return requiredMax(s.Theme, 50) }},
		{"layout", func() string { return requiredMax(s.Layout, 50) }},
		{"color_primary", func() string { return color(s.ColorPrimary) }},
		{"color_secondary", func() string { return color(s.ColorSecondary) }},
		{"font_family", func() string { return requiredMax(s.FontFamily, 100) }},
	}
}

func projectRules(p models.Project) []rule {
	return []rule{
		{"title", func() string { return requiredMax(p.Title, maxTitleLen) }},
		{"project_url", func() string { return optionalURL(p.ProjectURL) }},
		{"github_url", func() string { return optionalURL(p.GithubURL) }},
		{"thumbnail", func() string { return maxLen(p.Thumbnail, maxURLLen) }},
		{"display_order", func() string { return nonNegative(p.DisplayOrder) }},
		{"end_date", func() string { return dateRange(p.StartDate, p.EndDate) }},
	}
}

func userSkillRules(s models.UserSkill) []rule {
	return []rule{
		{"skill_id", func() string { return positiveID(s.SkillID) }},
		{"proficiency", func() string {
			// zero means unset; the default is applied on create
			if s.Proficiency != 0 && s.Proficiency < models.MinProficiency || s.Proficiency > models.MaxProficiency {
				return fmt.Sprintf("must be between %d and %d", models.MinProficiency, models.MaxProficiency)
			}
			return ""
		}},
		{"years_experience", func() string { return nonNegative(s.YearsExperience) }},
		{"display_order", func() string { return nonNegative(s.DisplayOrder) }},
	}
}

func educationRules(e models.Education) []rule {
	return []rule{
		{"institution", func() string { return requiredMax(e.Institution, maxTitleLen) }},
		{"degree", func() string { return maxLen(e.Degree, maxTitleLen) }},
		{"field_of_study", func() string { return maxLen(e.FieldOfStudy, maxTitleLen) }},
		{"display_order", func() string { return nonNegative(e.DisplayOrder) }},
		{"end_date", func() string {
			if e.CurrentlyStudying && e.EndDate != nil {
				return "must be empty while currently studying"
			}
			return dateRange(e.StartDate, e.EndDate)
		}},
	}
}

func experienceRules(w models.WorkExperience) []rule {
	return []rule{
		{"company", func() string { return requiredMax(w.Company, maxTitleLen) }},
		{"position", func() string { return requiredMax(w.Position, maxTitleLen) }},
		{"display_order", func() string { return nonNegative(w.DisplayOrder) }},
		{"end_date", func() string {
			if w.CurrentJob && w.EndDate != nil {
				return "must be empty for the current job"
			}
			return dateRange(w.StartDate, w.EndDate)
		}},
	}
}

func socialLinkRules(s models.SocialLink) []rule {
	return []rule{
		{"platform", func() string { return requiredMax(s.Platform, 50) }},
		{"url", func() string {
			if msg := required(s.URL); msg != "" {
				return msg
			}
			return optionalURL(s.URL)
		}},
		{"display_order", func() string { return nonNegative(s.DisplayOrder) }},
	}
}

func sectionRules(s models.PortfolioSection) []rule {
	return []rule{
		{"section_type", func() string {
			if !s.SectionType.Valid() {
				return "unknown section type"
			}
			return ""
		}},
		{"title", func() string { return maxLen(s.Title, maxTitleLen) }},
		{"custom_content", func() string {
			if s.SectionType == models.SectionCustom && strings.TrimSpace(s.CustomContent) == "" {
				return "is required for custom sections"
			}
			return ""
		}},
		{"display_order", func() string { return nonNegative(s.DisplayOrder) }},
	}
}

func required(s string) string {
	if strings.TrimSpace(s) == "" {
		return "is required"
	}
	return ""
}

func maxLen(s string, n int) string {
	if utf8.RuneCountInString(s) > n {
		return fmt.Sprintf("must be at most %d characters", n)
	}
	return ""
}

func requiredMax(s string, n int) string {
	if msg := required(s); msg != "" {
		return msg
	}
	return maxLen(s, n)
}

func username(s string) string {
	n := utf8.RuneCountInString(s)
	if n < minUsernameLen || n > maxUsernameLen {
		return fmt.Sprintf("must be %d to %d characters", minUsernameLen, maxUsernameLen)
	}
	if !usernamePattern.MatchString(s) {
		return "may contain letters, digits, '.', '-' and '_' only"
	}
	return ""
}

func email(s string, needed bool) string {
	if s == "" {
		if needed {
			return "is required"
		}
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "is not a valid address"
	}
	return maxLen(s, 255)
}

func password(s string) string {
	if len(s) < minPasswordLen {
		return fmt.Sprintf("must be at least %d characters", minPasswordLen)
	}
	if len(s) > maxPasswordLen {
		return fmt.Sprintf("must be at most %d bytes", maxPasswordLen)
	}
	return ""
}

func optionalURL(s string) string {
	if s == "" {
		return ""
	}
	if msg := maxLen(s, maxURLLen); msg != "" {
		return msg
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "must be an absolute http(s) URL"
	}
	return ""
}

func color(s string) string {
	if !colorPattern.MatchString(s) {
		return "must be a hex color such as #007bff"
	}
	return ""
}

func nonNegative(n int) string {
	if n < 0 {
		return "must not be negative"
	}
	return ""
}

func positiveID(id int64) string {
	if id <= 0 {
		return "must be a positive id"
	}
	return ""
}

func dateRange(start, end *time.Time) string {
	if start != nil && end != nil && end.Before(*start) {
		return "must not be before start_date"
	}
	return ""
}
