package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	rv, err := New("alice", "bob", 4, "  smooth ride, on time  ")
	require.NoError(t, err)
	assert.Equal(t, "smooth ride, on time", rv.Comment)
	assert.Equal(t, 4, rv.Rating)
	assert.False(t, rv.CreatedAt.IsZero())
}

func TestNewReviewValidation(t *testing.T) {
	cases := []struct {
		name     string
		reviewer string
		reviewee string
		rating   int
		comment  string
	}{
		{"missing reviewer", "", "bob", 4, "fine"},
		{"missing reviewee", "alice", "", 4, "fine"},
		{"self review", "alice", "alice", 4, "fine"},
		{"rating too low", "alice", "bob", 0, "fine"},
		{"rating too high", "alice", "bob", 6, "fine"},
		{"blank comment", "alice", "bob", 4, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.reviewer, tc.reviewee, tc.rating, tc.comment)
			assert.Error(t, err)
		})
	}
}
