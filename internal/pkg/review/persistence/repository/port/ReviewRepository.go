package port

import (
	"context"

	review "github.com/MdialloC19/backend-IPDL/internal/pkg/review/domain"
)

type ReviewRepository interface {
	Save(ctx context.Context, r review.Review) (string, error)
	// ListByReviewee returns reviews received by a user, newest first, with
	// the reviewer's display name resolved.
	ListByReviewee(ctx context.Context, revieweeID string) ([]review.Review, error)
}
