package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/request"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/response"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// DishHandler handles dish-related HTTP requests
type DishHandler struct {
	dishService *service.DishService
}

// NewDishHandler creates a new dish handler
func NewDishHandler(dishService *service.DishService) *DishHandler {
	return &DishHandler{dishService: dishService}
}

// List handles listing dishes (supports both page-based and cursor-based pagination)
func (h *DishHandler) List(c *gin.Context) {
	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	var filter request.DishFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.DishFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	result, err := h.dishService.ListDishes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Dishes retrieved successfully", result)
}

// listWithCursor handles listing dishes with cursor-based pagination
func (h *DishHandler) listWithCursor(c *gin.Context) {
	var filter request.DishFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	limit := 15
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	direction := c.DefaultQuery("direction", "next")

	params := &repository.DishCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    filter.Cursor,
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		Search:   filter.Search,
		Category: filter.Category,
	}

	result, err := h.dishService.ListDishesWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Dishes retrieved successfully", result)
}

// Create handles creating a dish
func (h *DishHandler) Create(c *gin.Context) {
	var req request.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dish, err := h.dishService.CreateDish(c.Request.Context(), &service.CreateDishInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dish created successfully", dish)
}

// Get handles retrieving a single dish
func (h *DishHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	dish, err := h.dishService.GetDish(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dish retrieved successfully", dish)
}

// Update handles updating a dish
func (h *DishHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dish, err := h.dishService.UpdateDish(c.Request.Context(), id, &service.UpdateDishInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dish updated successfully", dish)
}

// Delete handles deleting a dish
func (h *DishHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.dishService.DeleteDish(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dish deleted successfully", nil)
}
