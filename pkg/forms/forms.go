package forms

import "time"

type PartnerInquiry struct {
	Id          int64     `json:"id"`
	SpaceName   string    `json:"space_name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommunityMember struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
