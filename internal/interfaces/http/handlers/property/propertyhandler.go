package property

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/domus-inc/domus/internal/application/property/usecases"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/utils"
)

type CreatePropertyRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Address string `json:"address" binding:"required,max=500"`
	OwnerID uint   `json:"owner_id" binding:"required"`
}

type PropertyHandler struct {
	createUC usecases.CreatePropertyExecutor
	listUC   usecases.ListPropertiesExecutor
	getUC    usecases.GetPropertyExecutor
	logger   logger.Interface
}

func NewPropertyHandler(
	createUC usecases.CreatePropertyExecutor,
	listUC usecases.ListPropertiesExecutor,
	getUC usecases.GetPropertyExecutor,
) *PropertyHandler {
	return &PropertyHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create property", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePropertyCommand{
		Title:   req.Title,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created successfully")
}

// List handles GET /properties
func (h *PropertyHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPropertiesQuery{
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Properties, result.Total, pagination.Page, pagination.PageSize)
}

// ListMine handles GET /properties/mine
func (h *PropertyHandler) ListMine(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	principal, _ := authorization.GetPrincipal(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPropertiesQuery{
		OwnerID:    principal.UserID,
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Properties, result.Total, pagination.Page, pagination.PageSize)
}

// Get handles GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid property ID"))
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	query := usecases.GetPropertyQuery{PropertyID: uint(id)}
	if principal.Role == authorization.RoleOwner {
		query.RequireOwnerID = principal.UserID
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
