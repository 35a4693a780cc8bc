// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FieldError
	require.True(t, errors.As(err, &fe), "expected *FieldError, got %v", err)
	return fe.Field
}

func validUser() models.User {
	return models.User{Username: "alice", Email: "alice@example.com", Password: "secret1"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value and pointer", func(t *testing.T) {
		u := validUser()
		require.NoError(t, v.Validate(ctx, u))
		require.NoError(t, v.Validate(ctx, &u))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validUser(), "nickname")
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("field filter skips other rules", func(t *testing.T) {
		u := validUser()
		u.Password = ""
		require.NoError(t, v.Validate(ctx, u, "username", "email"))
		require.Error(t, v.Validate(ctx, u, "password"))
	})

	t.Run("field error wraps ErrInvalidInput", func(t *testing.T) {
		err := v.Validate(ctx, models.Credentials{})
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, "username: is required", err.Error())
	})
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.User)
		field  string
	}{
		{"short username", func(u *models.User) { u.Username = "al" }, "username"},
		{"long username", func(u *models.User) { u.Username = strings.Repeat("a", 51) }, "username"},
		{"username with space", func(u *models.User) { u.Username = "al ice" }, "username"},
		{"missing email", func(u *models.User) { u.Email = "" }, "email"},
		{"bad email", func(u *models.User) { u.Email = "alice" }, "email"},
		{"display name email", func(u *models.User) { u.Email = "Alice <alice@example.com>" }, "email"},
		{"short password", func(u *models.User) { u.Password = "12345" }, "password"},
		{"long password", func(u *models.User) { u.Password = strings.Repeat("p", 73) }, "password"},
		{"long first name", func(u *models.User) { u.FirstName = strings.Repeat("f", 101) }, "first_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			err := v.Validate(ctx, u)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}

func TestValidate_ProfileAndSettings(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.ProfileUpdate{Email: "a@b.io", JobTitle: "Engineer"}))
	err := v.Validate(ctx, models.ProfileUpdate{Email: "nope"})
	assert.Equal(t, "email", fieldOf(t, err))

	s := models.DefaultSettings(1, true)
	require.NoError(t, v.Validate(ctx, s))

	s.ColorPrimary = "blue"
	err = v.Validate(ctx, s)
	assert.Equal(t, "color_primary", fieldOf(t, err))

	s = models.DefaultSettings(1, true)
	s.ColorSecondary = "#abc"
	require.NoError(t, v.Validate(ctx, s))

	s.Theme = " "
	err = v.Validate(ctx, s)
	assert.Equal(t, "theme", fieldOf(t, err))
}

// ---------------------------------------------------------------------------
// Portfolio resources
// ---------------------------------------------------------------------------

func TestValidate_Project(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	ok := models.Project{
		Title:      "Site",
		ProjectURL: "https://example.com",
		StartDate:  date("2024-01-01"),
		EndDate:    date("2024-06-01"),
	}
	require.NoError(t, v.Validate(ctx, ok))

	tests := []struct {
		name   string
		mutate func(*models.Project)
		field  string
	}{
		{"empty title", func(p *models.Project) { p.Title = "" }, "title"},
		{"relative url", func(p *models.Project) { p.ProjectURL = "/home" }, "project_url"},
		{"ftp github url", func(p *models.Project) { p.GithubURL = "ftp://github.com/x" }, "github_url"},
		{"negative order", func(p *models.Project) { p.DisplayOrder = -1 }, "display_order"},
		{"end before start", func(p *models.Project) { p.EndDate = date("2023-01-01") }, "end_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ok
			tt.mutate(&p)
			err := v.Validate(ctx, &p)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}

func TestValidate_UserSkill(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.UserSkill{SkillID: 4, Proficiency: 5}))

	err := v.Validate(ctx, models.UserSkill{Proficiency: 3})
	assert.Equal(t, "skill_id", fieldOf(t, err))

	require.NoError(t, v.Validate(ctx, models.UserSkill{SkillID: 4}))

	for _, p := range []int{-1, 6} {
		err = v.Validate(ctx, models.UserSkill{SkillID: 1, Proficiency: p})
		assert.Equal(t, "proficiency", fieldOf(t, err))
	}

	err = v.Validate(ctx, models.UserSkill{SkillID: 1, Proficiency: 2, YearsExperience: -2})
	assert.Equal(t, "years_experience", fieldOf(t, err))
}

func TestValidate_EducationAndExperience(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Education{Institution: "MIT", CurrentlyStudying: true}))

	err := v.Validate(ctx, models.Education{})
	assert.Equal(t, "institution", fieldOf(t, err))

	err = v.Validate(ctx, models.Education{Institution: "MIT", CurrentlyStudying: true, EndDate: date("2020-01-01")})
	assert.Equal(t, "end_date", fieldOf(t, err))

	require.NoError(t, v.Validate(ctx, models.WorkExperience{Company: "Acme", Position: "Dev"}))

	err = v.Validate(ctx, models.WorkExperience{Company: "Acme"})
	assert.Equal(t, "position", fieldOf(t, err))

	err = v.Validate(ctx, models.WorkExperience{
		Company: "Acme", Position: "Dev",
		StartDate: date("2022-01-01"), EndDate: date("2021-01-01"),
	})
	assert.Equal(t, "end_date", fieldOf(t, err))
}

func TestValidate_SocialLinkAndSection(t *testing.T) {
	v := NewPortfolioValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.SocialLink{Platform: "github", URL: "https://github.com/alice"}))

	err := v.Validate(ctx, models.SocialLink{Platform: "github"})
	assert.Equal(t, "url", fieldOf(t, err))

	err = v.Validate(ctx, models.SocialLink{URL: "https://github.com/alice"})
	assert.Equal(t, "platform", fieldOf(t, err))

	require.NoError(t, v.Validate(ctx, models.PortfolioSection{SectionType: models.SectionAbout}))

	err = v.Validate(ctx, models.PortfolioSection{SectionType: "blog"})
	assert.Equal(t, "section_type", fieldOf(t, err))

	err = v.Validate(ctx, models.PortfolioSection{SectionType: models.SectionCustom})
	assert.Equal(t, "custom_content", fieldOf(t, err))
}
