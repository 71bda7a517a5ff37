package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// DishRepository defines the interface for dish data operations
type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)
	// GetByIDs retrieves multiple dishes by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Dish, error)
	Update(ctx context.Context, dish *entity.Dish) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DishFilterParams) ([]entity.Dish, int64, error)
	ListWithCursor(ctx context.Context, params *DishCursorFilterParams) ([]entity.Dish, error)
}

// DishFilterParams contains filtering parameters for dish queries
type DishFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	SortBy     string
	SortOrder  string
}

// DishCursorFilterParams contains cursor-based filtering parameters for dish queries
type DishCursorFilterParams struct {
	Cursor   *pagination.CursorParams
	Search   string
	Category string
}
