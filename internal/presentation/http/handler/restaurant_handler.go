package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/request"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/response"
)

// RestaurantHandler handles restaurant profile HTTP requests
type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// Get handles retrieving the restaurant profile
func (h *RestaurantHandler) Get(c *gin.Context) {
	profile, err := h.restaurantService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurant profile retrieved successfully", profile)
}

// Save handles creating or replacing the restaurant profile.
// Both POST and PUT land here; the profile is a singleton.
func (h *RestaurantHandler) Save(c *gin.Context) {
	var req request.SaveRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.restaurantService.SaveProfile(c.Request.Context(), &service.SaveProfileInput{
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Logo:       req.Logo,
		GSTNumber:  req.GSTNumber,
		SACCode:    req.SACCode,
		CGSTRate:   req.CGSTRate,
		SGSTRate:   req.SGSTRate,
		BillFooter: req.BillFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurant profile saved successfully", profile)
}
