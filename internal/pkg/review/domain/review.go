package review

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("review: not found")
)

// Review is a rating one user leaves for another after a shared trip.
type Review struct {
	ID           string
	ReviewerID   string
	RevieweeID   string
	Rating       int
	Comment      string
	ReviewerName string
	CreatedAt    time.Time
}

// New validates and builds a review. Both parties, a rating between 1 and 5
// and a non-empty comment are required.
func New(reviewerID, revieweeID string, rating int, comment string) (Review, error) {
	comment = strings.TrimSpace(comment)
	switch {
	case reviewerID == "":
		return Review{}, errors.New("review: reviewer is required")
	case revieweeID == "":
		return Review{}, errors.New("review: reviewee is required")
	case reviewerID == revieweeID:
		return Review{}, errors.New("review: cannot review yourself")
	case rating < 1 || rating > 5:
		return Review{}, errors.New("review: rating must be between 1 and 5")
	case comment == "":
		return Review{}, errors.New("review: comment is required")
	}
	return Review{
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
