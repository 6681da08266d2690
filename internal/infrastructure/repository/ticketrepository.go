package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/mappers"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
	"github.com/domus-inc/domus/internal/shared/db"
	"github.com/domus-inc/domus/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":           true,
	"title":        true,
	"status":       true,
	"priority":     true,
	"reporter_id":  true,
	"assignee_id":  true,
	"property_id":  true,
	"sla_deadline": true,
	"created_at":   true,
	"updated_at":   true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"description":  model.Description,
			"priority":     model.Priority,
			"status":       model.Status,
			"assignee_id":  model.AssigneeID,
			"property_id":  model.PropertyID,
			"sla_deadline": model.SLADeadline,
			"resolved_at":  model.ResolvedAt,
			"closed_at":    model.ClosedAt,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})
	query = applyTicketFilter(query, filter)

	return r.listWithQuery(query, filter)
}

func (r *TicketRepository) GetReportedTickets(
	ctx context.Context,
	reporterID uint,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("reporter_id = ?", reporterID)
	query = applyTicketFilter(query, filter)

	return r.listWithQuery(query, filter)
}

func (r *TicketRepository) GetAssignedTickets(
	ctx context.Context,
	assigneeID uint,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("assignee_id = ?", assigneeID)
	query = applyTicketFilter(query, filter)

	return r.listWithQuery(query, filter)
}

func (r *TicketRepository) GetTicketsForProperties(
	ctx context.Context,
	propertyIDs []uint,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	if len(propertyIDs) == 0 {
		return []*ticket.Ticket{}, 0, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("property_id IN ?", propertyIDs)
	query = applyTicketFilter(query, filter)

	return r.listWithQuery(query, filter)
}

func (r *TicketRepository) GetOverdueTickets(ctx context.Context, now time.Time) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []models.TicketModel
	if err := tx.Model(&models.TicketModel{}).
		Where("sla_deadline < ?", now.UnixMilli()).
		Where("status NOT IN ?", []string{"resolved", "closed"}).
		Order("sla_deadline ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list overdue tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

// applyTicketFilter adds the optional filter predicates shared by all list queries.
func applyTicketFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom.UnixMilli())
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", filter.CreatedTo.UnixMilli())
	}
	return query
}

func (r *TicketRepository) listWithQuery(
	query *gorm.DB,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

// loadComments queries comments for a ticket and adds them to the domain entity.
func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	for _, cm := range commentModels {
		comment, err := r.mapper.CommentToDomain(&cm)
		if err != nil {
			return err
		}
		if err := t.AddComment(comment); err != nil {
			return err
		}
	}

	return nil
}
