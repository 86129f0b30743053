package service

import (
	"testing"

	"colivio/pkg/customerror"
	"colivio/pkg/review"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewNotFoundDoesNotInsert(t *testing.T) {
	listingRepo := newFakeListingRepository()
	reviewRepo := newFakeReviewRepository()
	reviewService := NewReviewService(reviewRepo, listingRepo, "localhost", "8080")

	input := &review.Review{OverallRating: rating(5)}
	_, err := reviewService.SubmitReview("missing", input, nil)
	assert.Equal(t, pgx.ErrNoRows, err)
	assert.Empty(t, reviewRepo.reviews)
	assert.Empty(t, listingRepo.ratingUpdates)
}

func TestSubmitReviewAnonymousGetsPlaceholderIdentity(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "casa-lisbon"))
	reviewRepo := newFakeReviewRepository()
	reviewService := NewReviewService(reviewRepo, listingRepo, "localhost", "8080")

	input := &review.Review{OverallRating: rating(5)}
	detail, err := reviewService.SubmitReview("casa-lisbon", input, nil)
	require.NoError(t, err)

	require.Len(t, reviewRepo.reviews[1], 1)
	saved := reviewRepo.reviews[1][0]
	assert.NotEqual(t, uuid.Nil, saved.UserId)
	assert.Equal(t, review.AnonymousReviewerName, saved.ReviewerName)
	assert.Equal(t, int64(1), saved.ListingId)

	assert.InDelta(t, 5.0, detail.Averages.Overall, 0.0001)
	assert.Equal(t, int32(1), detail.Listing.ReviewCount)
	require.Len(t, listingRepo.ratingUpdates, 1)
	assert.Equal(t, ratingUpdate{id: 1, rating: 5.0, count: 1}, listingRepo.ratingUpdates[0])
}

func TestSubmitReviewAuthenticatedKeepsIdentity(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "casa-lisbon"))
	reviewRepo := newFakeReviewRepository()
	reviewService := NewReviewService(reviewRepo, listingRepo, "localhost", "8080")

	userId := uuid.New()
	input := &review.Review{ReviewerName: "Marta", OverallRating: rating(4)}
	_, err := reviewService.SubmitReview("casa-lisbon", input, &userId)
	require.NoError(t, err)

	saved := reviewRepo.reviews[1][0]
	assert.Equal(t, userId, saved.UserId)
	assert.Equal(t, "Marta", saved.ReviewerName)
}

func TestSubmitReviewInsertErrorPassesThrough(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "casa-lisbon"))
	reviewRepo := newFakeReviewRepository()
	reviewRepo.insertErr = customerror.ErrPermissionDenied
	reviewService := NewReviewService(reviewRepo, listingRepo, "localhost", "8080")

	input := &review.Review{OverallRating: rating(3)}
	_, err := reviewService.SubmitReview("casa-lisbon", input, nil)
	assert.Equal(t, customerror.ErrPermissionDenied, err)
	assert.Empty(t, listingRepo.ratingUpdates)
}

func TestSubmitReviewRecomputesAggregateOverFullSet(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "casa-lisbon"))
	reviewRepo := newFakeReviewRepository()
	reviewRepo.reviews[1] = []review.Review{
		{Id: 1, ListingId: 1, OverallRating: rating(5)},
	}
	reviewService := NewReviewService(reviewRepo, listingRepo, "localhost", "8080")

	input := &review.Review{OverallRating: rating(2)}
	detail, err := reviewService.SubmitReview("casa-lisbon", input, nil)
	require.NoError(t, err)

	assert.Len(t, detail.Reviews, 2)
	assert.InDelta(t, 3.5, detail.Averages.Overall, 0.0001)
	require.Len(t, listingRepo.ratingUpdates, 1)
	assert.Equal(t, ratingUpdate{id: 1, rating: 3.5, count: 2}, listingRepo.ratingUpdates[0])
}
