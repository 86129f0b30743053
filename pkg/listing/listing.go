package listing

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed_amount"
)

type Listing struct {
	Id              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Country         string     `json:"country"`
	Status          string     `json:"status"`
	OriginalPrice   int64      `json:"original_price"`
	DiscountedPrice *int64     `json:"discounted_price"`
	DiscountType    *string    `json:"discount_type"`
	DiscountValue   *int64     `json:"discount_value"`
	PricingUnit     string     `json:"pricing_unit"`
	Capacity        int32      `json:"capacity"`
	Rooms           int32      `json:"rooms"`
	FeaturedImage   string     `json:"featured_image"`
	IsSeasonal      bool       `json:"is_seasonal"`
	SeasonalStart   *time.Time `json:"seasonal_start_date"`
	SeasonalEnd     *time.Time `json:"seasonal_end_date"`
	WorkWifiInfo    string     `json:"work_wifi_info"`
	CommunityInfo   string     `json:"community_info"`
	ComfortInfo     string     `json:"comfort_info"`
	LocationInfo    string     `json:"location_info"`
	Rating          float64    `json:"rating"`
	ReviewCount     int32      `json:"review_count"`
	CreatedById     uuid.UUID  `json:"created_by_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ListingImage struct {
	Id        int64  `json:"id"`
	ListingId int64  `json:"listing_id"`
	Url       string `json:"url"`
	Filename  string `json:"filename"`
}
