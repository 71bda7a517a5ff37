package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restobill/restobill-api/pkg/apperror"
)

// ParseIDParam parses the ":id" path parameter as a UUID
func ParseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid ID format")
	}
	return id, nil
}
