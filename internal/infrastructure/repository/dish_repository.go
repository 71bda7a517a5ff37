package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	domainRepo "github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/pagination"
	"gorm.io/gorm"
)

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new dish repository
func NewDishRepository(db *gorm.DB) domainRepo.DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.db.WithContext(ctx).First(&dish, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dish, err
}

// GetByIDs retrieves multiple dishes by their IDs in a single query
func (r *dishRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Dish, error) {
	if len(ids) == 0 {
		return []entity.Dish{}, nil
	}
	var dishes []entity.Dish
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Dish{}, "id = ?", id).Error
}

func (r *dishRepository) List(ctx context.Context, params *domainRepo.DishFilterParams) ([]entity.Dish, int64, error) {
	var dishes []entity.Dish
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Dish{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "name"
	sortOrder := "ASC"
	switch params.SortBy {
	case "price", "created_at", "name":
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&dishes).Error

	return dishes, total, err
}

// ListWithCursor returns dishes using cursor-based pagination
func (r *dishRepository) ListWithCursor(ctx context.Context, params *domainRepo.DishCursorFilterParams) ([]entity.Dish, error) {
	var dishes []entity.Dish

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Dish{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	// Decode cursor if provided
	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Limit(params.Cursor.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&dishes).Error

	return dishes, err
}
