package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/application/ticket/dto"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	propertyRepo property.PropertyRepository
	profileRepo  profile.ProfileRepository
	atRiskWindow time.Duration
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	propertyRepo property.PropertyRepository,
	profileRepo profile.ProfileRepository,
	atRiskWindow time.Duration,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		propertyRepo: propertyRepo,
		profileRepo:  profileRepo,
		atRiskWindow: atRiskWindow,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ctx, t, query); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	result := dto.ToTicketDTO(t, comments, query.Role.IsStaff(), time.Now().UTC(), uc.atRiskWindow)

	uc.enrichDisplayFields(ctx, t, result)

	return result, nil
}

func (uc *GetTicketUseCase) authorize(ctx context.Context, t *ticket.Ticket, query GetTicketQuery) error {
	if t.CanBeViewedBy(query.UserID, query.Role) {
		return nil
	}

	// A property owner may view tickets raised against their properties even
	// when someone else reported them.
	if query.Role == authorization.RoleOwner && t.PropertyID() != nil {
		prop, err := uc.propertyRepo.GetByID(ctx, *t.PropertyID())
		if err == nil && prop.OwnerID() == query.UserID {
			return nil
		}
	}

	return errors.NewForbiddenError("you do not have access to this ticket")
}

// enrichDisplayFields fills in reporter and property display data. Lookup
// failures degrade the view rather than failing the request.
func (uc *GetTicketUseCase) enrichDisplayFields(ctx context.Context, t *ticket.Ticket, result *dto.TicketDTO) {
	if reporter, err := uc.profileRepo.GetByID(ctx, t.ReporterID()); err == nil {
		result.ReporterName = reporter.DisplayName()
		result.ReporterEmail = reporter.Email()
	} else {
		uc.logger.Warnw("failed to load reporter profile", "reporter_id", t.ReporterID(), "error", err)
	}

	if t.PropertyID() != nil {
		if prop, err := uc.propertyRepo.GetByID(ctx, *t.PropertyID()); err == nil {
			result.PropertyTitle = prop.Title()
		} else {
			uc.logger.Warnw("failed to load ticket property", "property_id", *t.PropertyID(), "error", err)
		}
	}
}
