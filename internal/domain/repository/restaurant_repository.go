package repository

import (
	"context"

	"github.com/restobill/restobill-api/internal/domain/entity"
)

// RestaurantRepository defines the interface for restaurant profile data access
type RestaurantRepository interface {
	// Get returns the single profile row, or (nil, nil) when none exists yet
	Get(ctx context.Context) (*entity.RestaurantProfile, error)
	Create(ctx context.Context, profile *entity.RestaurantProfile) error
	Update(ctx context.Context, profile *entity.RestaurantProfile) error
}
