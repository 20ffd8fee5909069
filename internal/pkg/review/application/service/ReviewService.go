package service

import (
	"context"
	"fmt"

	review "github.com/MdialloC19/backend-IPDL/internal/pkg/review/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/review/persistence/repository/port"
)

var ErrPersistence = fmt.Errorf("review service persistence error")

type ReviewService struct {
	Repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) Add(ctx context.Context, reviewerID, revieweeID string, rating int, comment string) (*review.Review, error) {
	rv, err := review.New(reviewerID, revieweeID, rating, comment)
	if err != nil {
		return nil, err
	}
	id, err := s.Repo.Save(ctx, rv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	rv.ID = id
	return &rv, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]review.Review, error) {
	out, err := s.Repo.ListByReviewee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}
