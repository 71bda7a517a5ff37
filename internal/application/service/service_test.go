package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// In-memory repositories for exercising services without a database.

type fakeDishRepo struct {
	mu     sync.Mutex
	dishes map[uuid.UUID]entity.Dish
}

func newFakeDishRepo() *fakeDishRepo {
	return &fakeDishRepo{dishes: make(map[uuid.UUID]entity.Dish)}
}

func (r *fakeDishRepo) Create(ctx context.Context, dish *entity.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dish.ID == uuid.Nil {
		dish.ID = uuid.New()
	}
	dish.CreatedAt = time.Now()
	r.dishes[dish.ID] = *dish
	return nil
}

func (r *fakeDishRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dish, ok := r.dishes[id]
	if !ok {
		return nil, nil
	}
	return &dish, nil
}

func (r *fakeDishRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Dish
	for _, id := range ids {
		if dish, ok := r.dishes[id]; ok {
			out = append(out, dish)
		}
	}
	return out, nil
}

func (r *fakeDishRepo) Update(ctx context.Context, dish *entity.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dishes[dish.ID] = *dish
	return nil
}

func (r *fakeDishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.dishes, id)
	return nil
}

func (r *fakeDishRepo) List(ctx context.Context, params *repository.DishFilterParams) ([]entity.Dish, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Dish
	for _, dish := range r.dishes {
		out = append(out, dish)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeDishRepo) ListWithCursor(ctx context.Context, params *repository.DishCursorFilterParams) ([]entity.Dish, error) {
	dishes, _, err := r.List(ctx, &repository.DishFilterParams{Pagination: pagination.DefaultPagination()})
	return dishes, err
}

type fakeRestaurantRepo struct {
	mu      sync.Mutex
	profile *entity.RestaurantProfile
}

func (r *fakeRestaurantRepo) Get(ctx context.Context) (*entity.RestaurantProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile == nil {
		return nil, nil
	}
	p := *r.profile
	return &p, nil
}

func (r *fakeRestaurantRepo) Create(ctx context.Context, profile *entity.RestaurantProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	p := *profile
	r.profile = &p
	return nil
}

func (r *fakeRestaurantRepo) Update(ctx context.Context, profile *entity.RestaurantProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *profile
	r.profile = &p
	return nil
}

type fakeBillRepo struct {
	mu    sync.Mutex
	bills []entity.Bill

	// numberCollisions makes the next n GetByNumber lookups report the
	// number as taken, regardless of stored bills.
	numberCollisions int
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	bill.CreatedAt = time.Now()
	r.bills = append(r.bills, *bill)
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bills {
		if b.ID == id {
			bill := b
			return &bill, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) GetByNumber(ctx context.Context, number string) (*entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.numberCollisions > 0 {
		r.numberCollisions--
		return &entity.Bill{ID: uuid.New(), Number: number}, nil
	}
	for _, b := range r.bills {
		if b.Number == number {
			bill := b
			return &bill, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	all, err := r.ListAll(ctx)
	return all, int64(len(all)), err
}

func (r *fakeBillRepo) ListAll(ctx context.Context) ([]entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Bill, len(r.bills))
	copy(out, r.bills)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
