package service

import (
	"testing"

	"colivio/pkg/admin"
	"colivio/pkg/listing"
	"colivio/pkg/review"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(value int16) *int16 {
	return &value
}

func activeListing(id int64, slug string) listing.Listing {
	return listing.Listing{
		Id:     id,
		Title:  slug,
		Slug:   slug,
		Status: listing.StatusActive,
	}
}

func TestGetListingDetailAggregatesAndWritesBack(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "casa-lisbon"))
	reviewRepo := newFakeReviewRepository()
	reviewRepo.reviews[1] = []review.Review{
		{
			Id: 1, ListingId: 1,
			OverallRating:      rating(5),
			SocialRating:       rating(4),
			WorkRating:         rating(4),
			SurroundingsRating: rating(4),
			FacilitiesRating:   rating(4),
			PriceRating:        rating(4),
		},
		{
			Id: 2, ListingId: 1,
			OverallRating:      rating(3),
			WorkRating:         rating(2),
			SurroundingsRating: rating(2),
			FacilitiesRating:   rating(2),
			PriceRating:        rating(2),
		},
	}
	listingService := NewListingService(listingRepo, reviewRepo, "localhost", "8080", "https://colivio.example.com")

	detail, err := listingService.GetListingDetail("casa-lisbon")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, detail.Averages.Overall, 0.0001)
	assert.InDelta(t, 4.0, detail.Averages.Social, 0.0001)
	assert.InDelta(t, 4.0, detail.Averages.Work, 0.0001)
	assert.Equal(t, 4.0, detail.Listing.Rating)
	assert.Equal(t, int32(2), detail.Listing.ReviewCount)
	assert.Len(t, detail.Reviews, 2)

	require.Len(t, listingRepo.ratingUpdates, 1)
	assert.Equal(t, ratingUpdate{id: 1, rating: 4.0, count: 2}, listingRepo.ratingUpdates[0])
}

func TestGetListingDetailNotFound(t *testing.T) {
	listingService := NewListingService(newFakeListingRepository(), newFakeReviewRepository(), "localhost", "8080", "")

	_, err := listingService.GetListingDetail("missing")
	assert.Equal(t, pgx.ErrNoRows, err)
}

func TestGetListingDetailInactiveIsNotFound(t *testing.T) {
	inactive := activeListing(1, "closed-space")
	inactive.Status = listing.StatusInactive
	listingService := NewListingService(newFakeListingRepository(inactive), newFakeReviewRepository(), "localhost", "8080", "")

	_, err := listingService.GetListingDetail("closed-space")
	assert.Equal(t, pgx.ErrNoRows, err)
}

func TestGetListingDetailNoReviewsSkipsWriteBack(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "quiet-place"))
	listingService := NewListingService(listingRepo, newFakeReviewRepository(), "localhost", "8080", "")

	detail, err := listingService.GetListingDetail("quiet-place")
	require.NoError(t, err)
	assert.Equal(t, review.Averages{}, detail.Averages)
	assert.Equal(t, 0.0, detail.Listing.Rating)
	assert.Empty(t, listingRepo.ratingUpdates)
}

// A failed write-back is logged and swallowed; the caller still gets the
// freshly computed averages.
func TestGetListingDetailWriteBackSoftFail(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(1, "casa-lisbon"))
	listingRepo.ratingErr = repoError("fake.UpdateRating")
	reviewRepo := newFakeReviewRepository()
	reviewRepo.reviews[1] = []review.Review{
		{Id: 1, ListingId: 1, OverallRating: rating(4)},
	}
	listingService := NewListingService(listingRepo, reviewRepo, "localhost", "8080", "")

	detail, err := listingService.GetListingDetail("casa-lisbon")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, detail.Averages.Overall, 0.0001)
	assert.Equal(t, 4.0, detail.Listing.Rating)
	assert.Equal(t, int32(1), detail.Listing.ReviewCount)
}

func TestInsertListingGeneratesUniqueSlug(t *testing.T) {
	taken := activeListing(1, "casa-lisbon")
	listingRepo := newFakeListingRepository(taken)
	listingService := NewListingService(listingRepo, newFakeReviewRepository(), "localhost", "8080", "")

	creator := &admin.Admin{UUID: uuid.New()}
	l := &listing.Listing{Title: "Casa Lisbon"}
	_, err := listingService.InsertListing(l, creator)
	require.NoError(t, err)
	assert.Equal(t, "casa-lisbon-2", l.Slug)
	assert.Equal(t, creator.UUID, l.CreatedById)
	assert.Equal(t, listing.StatusPending, l.Status)

	second := &listing.Listing{Title: "Casa Lisbon"}
	_, err = listingService.InsertListing(second, creator)
	require.NoError(t, err)
	assert.Equal(t, "casa-lisbon-3", second.Slug)
}

func TestResolveLegacySlug(t *testing.T) {
	listingRepo := newFakeListingRepository(activeListing(42, "sun-co-javea"))
	listingService := NewListingService(listingRepo, newFakeReviewRepository(), "localhost", "8080", "")

	resolved, err := listingService.ResolveLegacySlug(42)
	require.NoError(t, err)
	assert.Equal(t, "sun-co-javea", resolved)

	_, err = listingService.ResolveLegacySlug(999)
	assert.Equal(t, pgx.ErrNoRows, err)
}
