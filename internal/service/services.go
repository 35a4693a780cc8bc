package service

import (
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

type Services struct {
	AuthService        AuthService
	VisibilityResolver VisibilityResolver
	ProfileService     ProfileService
	SkillService       SkillService

	Projects    ResourceService[models.Project]
	UserSkills  ResourceService[models.UserSkill]
	Education   ResourceService[models.Education]
	Experience  ResourceService[models.WorkExperience]
	SocialLinks ResourceService[models.SocialLink]
	Sections    ResourceService[models.PortfolioSection]
}

// NewServices wires every service to storages. limiter may be nil.
func NewServices(storages *store.Storages, limiter LoginLimiter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewPortfolioValidator()
	codec := NewTokenCodec(cfg.App)

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, codec, limiter, cfg.App, logger)),
		VisibilityResolver: NewVisibilityResolver(storages.UserRepository, storages.SettingsRepository),
		ProfileService: NewProfileValidationService(validator).
			Wrap(NewProfileService(storages.UserRepository, storages.SettingsRepository)),
		SkillService: NewSkillService(storages.SkillRepository),

		Projects: NewResourceValidationService[models.Project](validator).
			Wrap(NewResourceService(storages.Projects, models.KindProject)),
		UserSkills: NewResourceValidationService[models.UserSkill](validator).
			Wrap(NewResourceService(storages.UserSkills, models.KindSkill,
				withPrepare(userSkillDefaults),
				withWriteError[models.UserSkill](userSkillWriteError))),
		Education: NewResourceValidationService[models.Education](validator).
			Wrap(NewResourceService(storages.Education, models.KindEducation)),
		Experience: NewResourceValidationService[models.WorkExperience](validator).
			Wrap(NewResourceService(storages.Experience, models.KindExperience)),
		SocialLinks: NewResourceValidationService[models.SocialLink](validator).
			Wrap(NewResourceService(storages.SocialLinks, models.KindSocialLink)),
		Sections: NewResourceValidationService[models.PortfolioSection](validator).
			Wrap(NewResourceService(storages.Sections, models.KindSection)),
	}
}
