package service

import (
	"context"
	"time"

	"colivio/internal/repository"
	"colivio/pkg/customerror"
	"colivio/pkg/review"
	"colivio/pkg/security"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewServiceI interface {
	SubmitReview(listingSlug string, input *review.Review, userId *uuid.UUID) (*ListingDetail, error)
}

type ReviewService struct {
	reviewRepo  repository.ReviewRepositoryI
	listingRepo repository.ListingRepositoryI
	host        string
	port        string
}

func NewReviewService(reviewRepo repository.ReviewRepositoryI, listingRepo repository.ListingRepositoryI, host string, port string) ReviewServiceI {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		host:        host,
		port:        port,
	}
}

// SubmitReview is the single submission path for authenticated and
// anonymous reviewers. A missing identity gets a throwaway random UUID
// that only satisfies the not-null user_id column.
func (reviewService *ReviewService) SubmitReview(listingSlug string, input *review.Review, userId *uuid.UUID) (*ListingDetail, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	l, err := reviewService.listingRepo.GetListingBySlug(ctx, listingSlug, true)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ReviewService.SubmitReview")
		return nil, customeErr
	}

	// Re-check by id against the store before writing, the slug lookup
	// may be serving a stale detail page.
	_, err = reviewService.listingRepo.GetListingById(ctx, l.Id, true)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ReviewService.SubmitReview")
		return nil, customeErr
	}

	input.ListingId = l.Id
	if userId != nil {
		input.UserId = *userId
	} else {
		input.UserId = security.AnonymousUserId()
	}
	if input.ReviewerName == "" {
		input.ReviewerName = review.AnonymousReviewerName
	}

	id, err := reviewService.reviewRepo.InsertReview(ctx, input)
	if err == customerror.ErrAlreadyExists || err == customerror.ErrPermissionDenied {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ReviewService.SubmitReview")
		return nil, customeErr
	}
	input.Id = id

	reviews, err := reviewService.reviewRepo.GetReviews(ctx, l.Id)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ReviewService.SubmitReview")
		return nil, customeErr
	}
	averages := refreshListingRating(ctx, reviewService.listingRepo, l, reviews)
	return &ListingDetail{
		Listing:  l,
		Reviews:  reviews,
		Averages: averages,
	}, nil
}
