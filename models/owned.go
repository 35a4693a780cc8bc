package models

// OwnedResource is implemented by every per-user entity whose mutations are
// gated by an ownership check.
type OwnedResource interface {
	GetID() int64
	GetOwnerID() int64
}

// ResourceKind names a family of owned resources. The value is also the URL
// segment under /api/profile and /api/portfolios/{username}.
type ResourceKind string

const (
	KindProject    ResourceKind = "projects"
	KindSkill      ResourceKind = "skills"
	KindEducation  ResourceKind = "education"
	KindExperience ResourceKind = "experience"
	KindSocialLink ResourceKind = "social-links"
	KindSection    ResourceKind = "sections"
)

func (k ResourceKind) String() string {
	return string(k)
}
