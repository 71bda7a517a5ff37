package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations.
// Bills are append-only so there are no update or delete methods.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByNumber(ctx context.Context, number string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// ListAll returns every bill newest first, for exports
	ListAll(ctx context.Context) ([]entity.Bill, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	ServiceType string
	DateFrom    string
	DateTo      string
}
