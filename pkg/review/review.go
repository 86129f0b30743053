package review

import (
	"time"

	"github.com/google/uuid"
)

const AnonymousReviewerName = "Anonymous nomad"

type Review struct {
	Id                 int64     `json:"id"`
	ListingId          int64     `json:"listing_id"`
	UserId             uuid.UUID `json:"user_id"`
	ReviewerName       string    `json:"reviewer_name"`
	ReviewText         string    `json:"review_text"`
	OverallRating      *int16    `json:"overall_rating"`
	SocialRating       *int16    `json:"social_rating"`
	WorkRating         *int16    `json:"work_rating"`
	SurroundingsRating *int16    `json:"surroundings_rating"`
	FacilitiesRating   *int16    `json:"facilities_rating"`
	PriceRating        *int16    `json:"price_rating"`
	SocialNotes        *string   `json:"social_notes"`
	WorkNotes          *string   `json:"work_notes"`
	SurroundingsNotes  *string   `json:"surroundings_notes"`
	FacilitiesNotes    *string   `json:"facilities_notes"`
	PriceNotes         *string   `json:"price_notes"`
	CreatedAt          time.Time `json:"created_at"`
}

// HasAllCategoryRatings reports whether every one of the five category
// ratings is set. Only such reviews count toward the category averages.
func (review *Review) HasAllCategoryRatings() bool {
	return review.SocialRating != nil &&
		review.WorkRating != nil &&
		review.SurroundingsRating != nil &&
		review.FacilitiesRating != nil &&
		review.PriceRating != nil
}
