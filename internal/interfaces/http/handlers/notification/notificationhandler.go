package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/domus-inc/domus/internal/application/notification/usecases"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/utils"
)

// NotificationHandler serves a caller's own notification rows. Scoping to the
// principal happens here, the use cases only see a recipient ID.
type NotificationHandler struct {
	listUC        usecases.ListNotificationsExecutor
	unreadCountUC usecases.UnreadCountExecutor
	markReadUC    usecases.MarkAsReadExecutor
	markAllUC     usecases.MarkAllAsReadExecutor
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	unreadCountUC usecases.UnreadCountExecutor,
	markReadUC usecases.MarkAsReadExecutor,
	markAllUC usecases.MarkAllAsReadExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		unreadCountUC: unreadCountUC,
		markReadUC:    markReadUC,
		markAllUC:     markAllUC,
		logger:        logger.NewLogger(),
	}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	h.list(c, false)
}

// ListUnread handles GET /notifications/unread
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	h.list(c, true)
}

func (h *NotificationHandler) list(c *gin.Context, unreadOnly bool) {
	pagination := utils.ParsePagination(c)
	principal, _ := authorization.GetPrincipal(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		RecipientID: principal.UserID,
		UnreadOnly:  unreadOnly,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, pagination.Page, pagination.PageSize)
}

// UnreadCount handles GET /notifications/unread/count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	principal, _ := authorization.GetPrincipal(c)

	result, err := h.unreadCountUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{
		RecipientID: principal.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": result.Count})
}

// MarkAsRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid notification ID"))
		return
	}

	principal, _ := authorization.GetPrincipal(c)

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		NotificationID: uint(id),
		RecipientID:    principal.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	principal, _ := authorization.GetPrincipal(c)

	if err := h.markAllUC.Execute(c.Request.Context(), usecases.MarkAllAsReadCommand{
		RecipientID: principal.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
