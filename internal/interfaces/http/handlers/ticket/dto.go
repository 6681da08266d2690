package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/domus-inc/domus/internal/application/ticket/usecases"
	domain "github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority"`
	PropertyID  uint   `json:"property_id" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(reporterID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		PropertyID:  r.PropertyID,
		ReporterID:  reporterID,
	}
}

// UpdateTicketRequest covers PATCH /tickets/:id. Exactly one kind of change
// per request: a status transition, a reassignment, or a field update.
type UpdateTicketRequest struct {
	Status      *string `json:"status,omitempty"`
	AssigneeID  *uint   `json:"assignee_id,omitempty"`
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Priority    *string `json:"priority,omitempty"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required,max=10000"`
	IsInternal bool   `json:"is_internal"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	PropertyID *uint
	AssigneeID *uint
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToFilter() domain.TicketFilter {
	return domain.TicketFilter{
		Status:     r.Status,
		Priority:   r.Priority,
		PropertyID: r.PropertyID,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}

	if s := c.Query("status"); s != "" {
		status, err := vo.NewTicketStatus(s)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		req.Status = &status
	}

	if p := c.Query("priority"); p != "" {
		priority, err := vo.NewPriority(p)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		req.Priority = &priority
	}

	if idStr := c.Query("property_id"); idStr != "" {
		id, err := parseUintParam(idStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid property_id filter")
		}
		req.PropertyID = &id
	}

	if idStr := c.Query("assignee_id"); idStr != "" {
		id, err := parseUintParam(idStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id filter")
		}
		req.AssigneeID = &id
	}

	return req, nil
}

func parseUintParam(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid identifier")
	}
	return uint(id), nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return id, nil
}
