package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

// AuthValidationService validates registration and login payloads before
// they reach the wrapped AuthService.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Register(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AuthService.Register(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AuthService.Login(ctx, credentials)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// ProfileValidationService validates profile and settings updates.
type ProfileValidationService struct {
	ProfileService
	validator validators.Validator
}

func NewProfileValidationService(validator validators.Validator) ProfileServiceWrapper {
	return &ProfileValidationService{validator: validator}
}

func (v *ProfileValidationService) UpdateProfile(ctx context.Context, principal models.Principal, profile models.ProfileUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, profile); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ProfileService.UpdateProfile(ctx, principal, profile)
}

func (v *ProfileValidationService) UpdateSettings(ctx context.Context, principal models.Principal, settings models.PortfolioSettings) (models.PortfolioSettings, error) {
	if err := v.validator.Validate(ctx, settings); err != nil {
		return models.PortfolioSettings{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ProfileService.UpdateSettings(ctx, principal, settings)
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.ProfileService = inner
	return v
}

// ResourceValidationService validates resource payloads and ids for any
// owned resource kind.
type ResourceValidationService[T models.OwnedResource] struct {
	ResourceService[T]
	validator validators.Validator
}

func NewResourceValidationService[T models.OwnedResource](validator validators.Validator) ResourceServiceWrapper[T] {
	return &ResourceValidationService[T]{validator: validator}
}

func (v *ResourceValidationService[T]) AuthorizeForOwner(ctx context.Context, id int64, principal models.Principal) (T, error) {
	var zero T
	if err := validID(id); err != nil {
		return zero, err
	}

	return v.ResourceService.AuthorizeForOwner(ctx, id, principal)
}

func (v *ResourceValidationService[T]) Create(ctx context.Context, principal models.Principal, item T) (T, error) {
	var zero T
	if err := v.validator.Validate(ctx, item); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ResourceService.Create(ctx, principal, item)
}

func (v *ResourceValidationService[T]) Update(ctx context.Context, principal models.Principal, id int64, item T) (T, error) {
	var zero T
	if err := validID(id); err != nil {
		return zero, err
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ResourceService.Update(ctx, principal, id, item)
}

func (v *ResourceValidationService[T]) Delete(ctx context.Context, principal models.Principal, id int64) error {
	if err := validID(id); err != nil {
		return err
	}

	return v.ResourceService.Delete(ctx, principal, id)
}

func (v *ResourceValidationService[T]) Wrap(inner ResourceService[T]) ResourceService[T] {
	v.ResourceService = inner
	return v
}

func validID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidDataProvided)
	}
	return nil
}
