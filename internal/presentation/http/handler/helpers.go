package handler

import (
	"strconv"

	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/middleware"
	"github.com/ahamedrahman2000/njv-travels/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOperatorID extracts the operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	id := middleware.OperatorID(c)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// requireOperator writes a 401 and returns nil when no operator is attached
func requireOperator(c *gin.Context) *uuid.UUID {
	operatorID := GetOperatorID(c)
	if operatorID == nil {
		response.Unauthorized(c, "Operator not authenticated")
	}
	return operatorID
}

func parseID(c *gin.Context, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}

// confirmed reports whether a destructive request carries confirm=true
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	if !ok {
		response.BadRequest(c, "Deletion must be confirmed with confirm=true")
	}
	return ok
}
