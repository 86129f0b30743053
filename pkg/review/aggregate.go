package review

import "math"

type Averages struct {
	Overall      float64 `json:"overall"`
	Social       float64 `json:"social"`
	Work         float64 `json:"work"`
	Surroundings float64 `json:"surroundings"`
	Facilities   float64 `json:"facilities"`
	Price        float64 `json:"price"`
}

// Aggregate computes the average ratings for one listing's reviews.
// The overall average uses every review that carries an overall rating.
// The five category averages use only reviews where all five category
// ratings are set, so a review missing even one category contributes to
// none of the category averages while still counting toward overall.
func Aggregate(reviews []Review) Averages {
	var averages Averages
	if len(reviews) == 0 {
		return averages
	}

	var overallSum float64
	overallCount := 0
	for i := range reviews {
		if reviews[i].OverallRating != nil {
			overallSum += float64(*reviews[i].OverallRating)
			overallCount++
		}
	}
	if overallCount > 0 {
		averages.Overall = overallSum / float64(overallCount)
	}

	var socialSum, workSum, surroundingsSum, facilitiesSum, priceSum float64
	validCount := 0
	for i := range reviews {
		if !reviews[i].HasAllCategoryRatings() {
			continue
		}
		socialSum += float64(*reviews[i].SocialRating)
		workSum += float64(*reviews[i].WorkRating)
		surroundingsSum += float64(*reviews[i].SurroundingsRating)
		facilitiesSum += float64(*reviews[i].FacilitiesRating)
		priceSum += float64(*reviews[i].PriceRating)
		validCount++
	}
	if validCount > 0 {
		averages.Social = socialSum / float64(validCount)
		averages.Work = workSum / float64(validCount)
		averages.Surroundings = surroundingsSum / float64(validCount)
		averages.Facilities = facilitiesSum / float64(validCount)
		averages.Price = priceSum / float64(validCount)
	}
	return averages
}

// RoundRating rounds to one decimal, the precision of the cached
// rating column on the listing.
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}
