package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// DishService handles menu dish operations
type DishService struct {
	dishRepo repository.DishRepository
}

// NewDishService creates a new dish service
func NewDishService(dishRepo repository.DishRepository) *DishService {
	return &DishService{
		dishRepo: dishRepo,
	}
}

// CreateDishInput represents the create dish input
type CreateDishInput struct {
	Name        string
	Price       float64
	Category    *string
	Description *string
}

// CreateDish creates a new dish
func (s *DishService) CreateDish(ctx context.Context, input *CreateDishInput) (*entity.Dish, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Dish price cannot be negative")
	}

	dish := &entity.Dish{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}

	return dish, nil
}

// GetDish retrieves a dish by ID
func (s *DishService) GetDish(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperror.NewNotFoundError("Dish")
	}
	return dish, nil
}

// UpdateDishInput represents the update dish input
type UpdateDishInput struct {
	Name        string
	Price       float64
	Category    *string
	Description *string
}

// UpdateDish updates an existing dish. Bills keep their own copies of
// dish names and prices, so past bills are unaffected.
func (s *DishService) UpdateDish(ctx context.Context, id uuid.UUID, input *UpdateDishInput) (*entity.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperror.NewNotFoundError("Dish")
	}

	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Dish price cannot be negative")
	}

	dish.Name = input.Name
	dish.Price = input.Price
	dish.Category = input.Category
	dish.Description = input.Description

	if err := s.dishRepo.Update(ctx, dish); err != nil {
		return nil, err
	}

	return dish, nil
}

// DeleteDish removes a dish from the menu
func (s *DishService) DeleteDish(ctx context.Context, id uuid.UUID) error {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dish == nil {
		return apperror.NewNotFoundError("Dish")
	}
	return s.dishRepo.Delete(ctx, id)
}

// ListDishes lists dishes with filtering
func (s *DishService) ListDishes(ctx context.Context, params *repository.DishFilterParams) (*pagination.PaginatedResult[entity.Dish], error) {
	dishes, total, err := s.dishRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(dishes, pag), nil
}

// ListDishesWithCursor lists dishes with cursor-based pagination
func (s *DishService) ListDishesWithCursor(ctx context.Context, params *repository.DishCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Dish], error) {
	dishes, err := s.dishRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	pag, trimmed := pagination.NewCursorPagination(dishes, params.Cursor.Limit,
		func(d entity.Dish) string { return d.ID.String() },
		func(d entity.Dish) time.Time { return d.CreatedAt },
	)
	pag.HasPrev = params.Cursor.Cursor != ""

	return pagination.NewCursorPaginatedResult(trimmed, pag), nil
}
