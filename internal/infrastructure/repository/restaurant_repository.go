package repository

import (
	"context"
	"errors"

	"github.com/restobill/restobill-api/internal/domain/entity"
	domainRepo "github.com/restobill/restobill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant profile repository
func NewRestaurantRepository(db *gorm.DB) domainRepo.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Get(ctx context.Context) (*entity.RestaurantProfile, error) {
	var profile entity.RestaurantProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *restaurantRepository) Create(ctx context.Context, profile *entity.RestaurantProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *restaurantRepository) Update(ctx context.Context, profile *entity.RestaurantProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
