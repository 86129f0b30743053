package blog

import (
	"strings"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type BlogPost struct {
	Id               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content"`
	Excerpt          string    `json:"excerpt"`
	Category         string    `json:"category"`
	Author           string    `json:"author"`
	FeaturedImage    string    `json:"featured_image"`
	FeaturedImageAlt string    `json:"featured_image_alt"`
	Status           string    `json:"status"`
	Featured         bool      `json:"featured"`
	ReadTime         int32     `json:"read_time"`
	LinkedListings   []int64   `json:"linked_listings"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReadTime estimates reading time in minutes at 200 words per minute,
// never less than one minute.
func ReadTime(content string) int32 {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return int32(minutes)
}
