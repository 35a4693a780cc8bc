package store

import (
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	SettingsRepository SettingsRepository
	SkillRepository    SkillRepository

	Projects    OwnedRepository[models.Project]
	UserSkills  OwnedRepository[models.UserSkill]
	Education   OwnedRepository[models.Education]
	Experience  OwnedRepository[models.WorkExperience]
	SocialLinks OwnedRepository[models.SocialLink]
	Sections    OwnedRepository[models.PortfolioSection]
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
		SkillRepository:    NewSkillRepository(db, logger),

		Projects:    newOwnedRepository(db, projectsTable, logger),
		UserSkills:  newOwnedRepository(db, userSkillsTable, logger),
		Education:   newOwnedRepository(db, educationTable, logger),
		Experience:  newOwnedRepository(db, experienceTable, logger),
		SocialLinks: newOwnedRepository(db, socialLinksTable, logger),
		Sections:    newOwnedRepository(db, sectionsTable, logger),
	}
}
