package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/restobill/restobill-api/pkg/billing"
	"github.com/restobill/restobill-api/pkg/imageutil"
)

// RestaurantService handles the restaurant profile
type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(restaurantRepo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
	}
}

// GetProfile retrieves the restaurant profile
func (s *RestaurantService) GetProfile(ctx context.Context) (*entity.RestaurantProfile, error) {
	profile, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Restaurant profile")
	}
	return profile, nil
}

// SaveProfileInput represents the input for saving the restaurant profile
type SaveProfileInput struct {
	Name       string
	Address    *string
	Phone      *string
	Logo       *string
	GSTNumber  *string
	SACCode    *string
	CGSTRate   *float64
	SGSTRate   *float64
	BillFooter *string
}

// SaveProfile creates the profile on first save and updates it after.
// The profile is a singleton: repeated saves always land on the same row.
func (s *RestaurantService) SaveProfile(ctx context.Context, input *SaveProfileInput) (*entity.RestaurantProfile, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Restaurant name is required")
	}

	logo := input.Logo
	if logo != nil && *logo != "" {
		normalized, err := imageutil.NormalizeLogo(*logo)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid logo: " + err.Error())
		}
		logo = &normalized
	}

	profile, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.RestaurantProfile{
			CGSTRate: billing.DefaultCGSTRate,
			SGSTRate: billing.DefaultSGSTRate,
		}
	}

	profile.Name = input.Name
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.Logo = logo
	profile.GSTNumber = input.GSTNumber
	profile.SACCode = input.SACCode
	profile.BillFooter = input.BillFooter

	if input.CGSTRate != nil && *input.CGSTRate >= 0 {
		profile.CGSTRate = *input.CGSTRate
	}
	if input.SGSTRate != nil && *input.SGSTRate >= 0 {
		profile.SGSTRate = *input.SGSTRate
	}

	if profile.ID == uuid.Nil {
		if err := s.restaurantRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.restaurantRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
