package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSkills(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSkillRepository(db, logger.Nop())

	mock.ExpectQuery("FROM skills").WithArgs("language").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "icon"}).
			AddRow(1, "Go", "language", "").
			AddRow(2, "Java", "language", ""))

	skills, err := repo.ListSkills(context.Background(), "language")

	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
}

func TestGetSkill_Missing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSkillRepository(db, logger.Nop())

	mock.ExpectQuery("FROM skills").WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSkill(context.Background(), 99)

	assert.ErrorIs(t, err, ErrSkillNotFound)
}
