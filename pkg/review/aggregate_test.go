package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rating(value int16) *int16 {
	return &value
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Averages{}, Aggregate(nil))
	assert.Equal(t, Averages{}, Aggregate([]Review{}))
}

func TestAggregateAllNil(t *testing.T) {
	reviews := []Review{
		{ReviewerName: "a"},
		{ReviewerName: "b"},
	}
	assert.Equal(t, Averages{}, Aggregate(reviews))
}

func TestAggregateOverallIgnoresMissing(t *testing.T) {
	reviews := []Review{
		{OverallRating: rating(5)},
		{OverallRating: rating(3)},
		{}, // no overall rating, excluded from the mean
	}
	averages := Aggregate(reviews)
	assert.InDelta(t, 4.0, averages.Overall, 0.0001)
}

// A review missing even one category rating contributes to none of the
// five category averages, but still counts toward overall.
func TestAggregatePartialReviewExcludedFromCategories(t *testing.T) {
	reviews := []Review{
		{
			OverallRating:      rating(5),
			SocialRating:       rating(4),
			WorkRating:         rating(4),
			SurroundingsRating: rating(4),
			FacilitiesRating:   rating(4),
			PriceRating:        rating(4),
		},
		{
			OverallRating:      rating(3),
			WorkRating:         rating(2),
			SurroundingsRating: rating(2),
			FacilitiesRating:   rating(2),
			PriceRating:        rating(2),
		},
	}
	averages := Aggregate(reviews)
	assert.InDelta(t, 4.0, averages.Overall, 0.0001)
	assert.InDelta(t, 4.0, averages.Social, 0.0001)
	assert.InDelta(t, 4.0, averages.Work, 0.0001)
	assert.InDelta(t, 4.0, averages.Surroundings, 0.0001)
	assert.InDelta(t, 4.0, averages.Facilities, 0.0001)
	assert.InDelta(t, 4.0, averages.Price, 0.0001)
}

func TestAggregateCategoryMeans(t *testing.T) {
	reviews := []Review{
		{
			OverallRating:      rating(5),
			SocialRating:       rating(5),
			WorkRating:         rating(4),
			SurroundingsRating: rating(3),
			FacilitiesRating:   rating(2),
			PriceRating:        rating(1),
		},
		{
			OverallRating:      rating(4),
			SocialRating:       rating(3),
			WorkRating:         rating(2),
			SurroundingsRating: rating(5),
			FacilitiesRating:   rating(4),
			PriceRating:        rating(3),
		},
	}
	averages := Aggregate(reviews)
	assert.InDelta(t, 4.5, averages.Overall, 0.0001)
	assert.InDelta(t, 4.0, averages.Social, 0.0001)
	assert.InDelta(t, 3.0, averages.Work, 0.0001)
	assert.InDelta(t, 4.0, averages.Surroundings, 0.0001)
	assert.InDelta(t, 3.0, averages.Facilities, 0.0001)
	assert.InDelta(t, 2.0, averages.Price, 0.0001)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.3, RoundRating(4.25))
	assert.Equal(t, 4.2, RoundRating(4.24))
	assert.Equal(t, 0.0, RoundRating(0))
	assert.Equal(t, 5.0, RoundRating(4.99))
}

func TestHasAllCategoryRatings(t *testing.T) {
	full := Review{
		SocialRating:       rating(1),
		WorkRating:         rating(1),
		SurroundingsRating: rating(1),
		FacilitiesRating:   rating(1),
		PriceRating:        rating(1),
	}
	assert.True(t, full.HasAllCategoryRatings())

	partial := full
	partial.PriceRating = nil
	assert.False(t, partial.HasAllCategoryRatings())

	// overall alone does not make a review valid for category averaging
	onlyOverall := Review{OverallRating: rating(5)}
	assert.False(t, onlyOverall.HasAllCategoryRatings())
}
