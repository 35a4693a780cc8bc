package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type skillRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSkillRepository constructs a read-only SkillRepository over the
// "skills" catalog table.
func NewSkillRepository(db *DB, logger *logger.Logger) SkillRepository {
	return &skillRepository{db: db, logger: logger}
}

// ListSkills returns the catalog ordered by name. An empty category returns
// every skill.
func (r *skillRepository) ListSkills(ctx context.Context, category string) ([]models.Skill, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSkills, category)
	if err != nil {
		log.Err(err).Str("func", "skillRepository.ListSkills").Msg("failed to query skills")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0, 16)
	for rows.Next() {
		var s models.Skill
		if err = rows.Scan(&s.ID, &s.Name, &s.Category, &s.Icon); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		skills = append(skills, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return skills, nil
}

func (r *skillRepository) GetSkill(ctx context.Context, id int64) (models.Skill, error) {
	var s models.Skill
	err := r.db.QueryRowContext(ctx, getSkill, id).Scan(&s.ID, &s.Name, &s.Category, &s.Icon)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Skill{}, ErrSkillNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "skillRepository.GetSkill").Int64("skill_id", id).Msg("failed to read skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}
