package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment_Valid(t *testing.T) {
	c, err := NewComment(1, 2, "Plumber booked for Tuesday", false)

	require.NoError(t, err)
	assert.Equal(t, uint(1), c.TicketID())
	assert.Equal(t, uint(2), c.AuthorID())
	assert.Equal(t, "Plumber booked for Tuesday", c.Content())
	assert.False(t, c.IsInternal())
}

func TestNewComment_EmptyContentRejected(t *testing.T) {
	_, err := NewComment(1, 2, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content cannot be empty")
}

func TestNewComment_ContentTooLong(t *testing.T) {
	_, err := NewComment(1, 2, strings.Repeat("x", 5001), false)
	assert.Error(t, err)
}

func TestNewComment_ZeroIDs(t *testing.T) {
	_, err := NewComment(0, 2, "content", false)
	assert.Error(t, err)

	_, err = NewComment(1, 0, "content", false)
	assert.Error(t, err)
}

func TestComment_UpdateContent(t *testing.T) {
	c, err := NewComment(1, 2, "original", false)
	require.NoError(t, err)

	require.NoError(t, c.UpdateContent("revised"))
	assert.Equal(t, "revised", c.Content())

	assert.Error(t, c.UpdateContent(""))
}
