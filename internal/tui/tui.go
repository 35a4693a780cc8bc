// Package tui renders API responses for the terminal and prompts for
// secrets without echoing them.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

// RenderUser renders an account.
func RenderUser(u models.User) string {
	return renderPage("@"+u.Username, []field{
		{"name", strings.TrimSpace(u.FirstName + " " + u.LastName)},
		{"email", u.Email},
		{"title", u.JobTitle},
		{"location", u.Location},
	}, u.Bio)
}

// RenderPortfolio renders the root of a public portfolio.
func RenderPortfolio(p models.PublicPortfolio) string {
	return joinVertical(
		RenderUser(p.User),
		helpStyle.Render(fmt.Sprintf("theme %s, layout %s", p.Settings.Theme, p.Settings.Layout)),
	)
}

// RenderProjects renders a project list, featured projects first marked
// with a star.
func RenderProjects(projects []models.Project) string {
	if len(projects) == 0 {
		return helpStyle.Render("no projects")
	}

	pages := make([]string, 0, len(projects))
	for _, p := range projects {
		title := p.Title
		if p.Featured {
			title = "* " + title
		}
		pages = append(pages, renderPage(title, []field{
			{"url", p.ProjectURL},
			{"github", p.GithubURL},
			{"period", period(p)},
		}, p.Description))
	}
	return joinVertical(pages...)
}

// RenderSkills renders the catalog grouped by category in input order.
func RenderSkills(skills []models.Skill) string {
	if len(skills) == 0 {
		return helpStyle.Render("no skills")
	}

	var order []string
	byCategory := make(map[string][]string)
	for _, s := range skills {
		if _, seen := byCategory[s.Category]; !seen {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s.Name+" #"+strconv.FormatInt(s.ID, 10))
	}

	fields := make([]field, 0, len(order))
	for _, c := range order {
		fields = append(fields, field{valueOrDash(c), strings.Join(byCategory[c], ", ")})
	}
	return renderPage("Skills", fields)
}

// RenderError renders err for stderr.
func RenderError(err error) string {
	return errorStyle.Render("error: ") + humanizeServerUnavailableError(err)
}

func period(p models.Project) string {
	const layout = "2006-01"
	switch {
	case p.StartDate == nil:
		return ""
	case p.EndDate == nil:
		return p.StartDate.Format(layout) + " - now"
	default:
		return p.StartDate.Format(layout) + " - " + p.EndDate.Format(layout)
	}
}
