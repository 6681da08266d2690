package ticket

import (
	"fmt"
	"time"

	"github.com/domus-inc/domus/internal/shared/biztime"
)

// MaxCommentLength bounds comment content in bytes; the HTTP layer enforces
// the same bound on the request body.
const MaxCommentLength = 10000

// Comment is a discussion entry on a ticket. Internal comments are visible to
// staff roles only; that filtering happens in the application layer.
type Comment struct {
	id         uint
	ticketID   uint
	authorID   uint
	content    string
	isInternal bool
	createdAt  time.Time
	updatedAt  time.Time
}

func validateCommentContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > MaxCommentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", MaxCommentLength)
	}
	return nil
}

func NewComment(
	ticketID uint,
	authorID uint,
	content string,
	isInternal bool,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:   ticketID,
		authorID:   authorID,
		content:    content,
		isInternal: isInternal,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructComment rebuilds a comment from storage without re-running
// content validation; stored rows are trusted.
func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		content:    content,
		isInternal: isInternal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) IsInternal() bool     { return c.isInternal }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) UpdateContent(content string) error {
	if err := validateCommentContent(content); err != nil {
		return err
	}
	c.content = content
	c.updatedAt = biztime.NowUTC()
	return nil
}
