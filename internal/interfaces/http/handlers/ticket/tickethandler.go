package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/domus-inc/domus/internal/application/ticket/usecases"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	updateTicketUC   usecases.UpdateTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	addCommentUC     usecases.AddCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	myTicketsUC      usecases.MyTicketsExecutor
	overdueTicketsUC usecases.OverdueTicketsExecutor
	getHistoryUC     usecases.GetHistoryExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	myTicketsUC usecases.MyTicketsExecutor,
	overdueTicketsUC usecases.OverdueTicketsExecutor,
	getHistoryUC usecases.GetHistoryExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		updateTicketUC:   updateTicketUC,
		changeStatusUC:   changeStatusUC,
		assignTicketUC:   assignTicketUC,
		addCommentUC:     addCommentUC,
		listCommentsUC:   listCommentsUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		myTicketsUC:      myTicketsUC,
		overdueTicketsUC: overdueTicketsUC,
		getHistoryUC:     getHistoryUC,
		logger:           logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(principal.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   principal.UserID,
		Role:     principal.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		UserID:  principal.UserID,
		Role:    principal.Role,
		Filters: req.ToFilter(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// MyTickets handles GET /tickets/my
func (h *TicketHandler) MyTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.myTicketsUC.Execute(c.Request.Context(), usecases.MyTicketsQuery{
		UserID:  principal.UserID,
		Filters: req.ToFilter(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// OverdueTickets handles GET /tickets/overdue
func (h *TicketHandler) OverdueTickets(c *gin.Context) {
	result, err := h.overdueTicketsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /tickets/:id. The body carries exactly one kind
// of change: a status transition, a reassignment, or a field update.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	switch {
	case req.Status != nil:
		if req.AssigneeID != nil || req.Title != nil || req.Description != nil || req.Priority != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("status cannot be combined with other changes"))
			return
		}
		result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
			TicketID:  ticketID,
			NewStatus: *req.Status,
			UserID:    principal.UserID,
			Role:      principal.Role,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)

	case req.AssigneeID != nil:
		if req.Title != nil || req.Description != nil || req.Priority != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("assignee_id cannot be combined with other changes"))
			return
		}
		// Reassignment through PATCH stays a staff-management operation even
		// though the route allow-list is wider.
		if principal.Role != authorization.RoleAdmin && principal.Role != authorization.RoleManager {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("only admins and managers may assign tickets"))
			return
		}
		result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
			TicketID:   ticketID,
			AssigneeID: *req.AssigneeID,
			AssignedBy: principal.UserID,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)

	default:
		result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
			TicketID:    ticketID,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			UserID:      principal.UserID,
			Role:        principal.Role,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
	}
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		AssignedBy: principal.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:   ticketID,
		AuthorID:   principal.UserID,
		Role:       principal.Role,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		TicketID: ticketID,
		UserID:   principal.UserID,
		Role:     principal.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Comments)
}

// GetHistory handles GET /tickets/:id/history
func (h *TicketHandler) GetHistory(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHistoryUC.Execute(c.Request.Context(), usecases.GetHistoryQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Entries)
}
