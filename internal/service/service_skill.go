package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type skillService struct {
	skillRepository store.SkillRepository
}

func NewSkillService(skills store.SkillRepository) SkillService {
	return &skillService{skillRepository: skills}
}

// List returns the catalog, optionally filtered by category.
func (s *skillService) List(ctx context.Context, category string) ([]models.Skill, error) {
	skills, err := s.skillRepository.ListSkills(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing skills failed: %w", err)
	}

	return skills, nil
}

func (s *skillService) Get(ctx context.Context, id int64) (models.Skill, error) {
	skill, err := s.skillRepository.GetSkill(ctx, id)
	switch {
	case errors.Is(err, store.ErrSkillNotFound):
		return models.Skill{}, ErrSkillNotFound
	case err != nil:
		return models.Skill{}, fmt.Errorf("skill lookup failed: %w", err)
	}

	return skill, nil
}
