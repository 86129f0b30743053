package repository

import (
	"context"

	"colivio/pkg/customerror"
	"colivio/pkg/review"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetReviews(ctx context.Context, listingId int64) ([]review.Review, error)
	InsertReview(ctx context.Context, r *review.Review) (int64, error)
}

type ReviewRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewReviewRepository(pool *pgxpool.Pool, host string, port string) ReviewRepositoryI {
	return &ReviewRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (reviewRepo *ReviewRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		listing_id BIGINT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		user_id UUID NOT NULL,
		reviewer_name TEXT NOT NULL DEFAULT 'Anonymous nomad',
		review_text TEXT NOT NULL DEFAULT '',
		overall_rating SMALLINT,
		social_rating SMALLINT,
		work_rating SMALLINT,
		surroundings_rating SMALLINT,
		facilities_rating SMALLINT,
		price_rating SMALLINT,
		social_notes TEXT,
		work_notes TEXT,
		surroundings_notes TEXT,
		facilities_notes TEXT,
		price_notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := reviewRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("reviewRepo.CreateTables", reviewRepo.Host+":"+reviewRepo.Port, err.Error())
	}

	createIndexQuery := `CREATE INDEX IF NOT EXISTS reviews_listing_id_idx ON reviews(listing_id);`
	_, err = reviewRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("reviewRepo.CreateTables", reviewRepo.Host+":"+reviewRepo.Port, err.Error())
	}
	return nil
}

func (reviewRepo *ReviewRepository) GetReviews(ctx context.Context, listingId int64) ([]review.Review, error) {
	reviews := []review.Review{}
	query := `SELECT id, listing_id, user_id, reviewer_name, review_text,
	overall_rating, social_rating, work_rating, surroundings_rating, facilities_rating, price_rating,
	social_notes, work_notes, surroundings_notes, facilities_notes, price_notes, created_at
	FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC`
	rows, err := reviewRepo.Pool.Query(ctx, query, listingId)
	if err != nil {
		return nil, customerror.NewError("reviewRepo.GetReviews", reviewRepo.Host+":"+reviewRepo.Port, err.Error())
	}
	for rows.Next() {
		var r review.Review
		err := rows.Scan(
			&r.Id,
			&r.ListingId,
			&r.UserId,
			&r.ReviewerName,
			&r.ReviewText,
			&r.OverallRating,
			&r.SocialRating,
			&r.WorkRating,
			&r.SurroundingsRating,
			&r.FacilitiesRating,
			&r.PriceRating,
			&r.SocialNotes,
			&r.WorkNotes,
			&r.SurroundingsNotes,
			&r.FacilitiesNotes,
			&r.PriceNotes,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, customerror.NewError("reviewRepo.GetReviews", reviewRepo.Host+":"+reviewRepo.Port, err.Error())
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func (reviewRepo *ReviewRepository) InsertReview(ctx context.Context, r *review.Review) (int64, error) {
	query := `INSERT INTO reviews (listing_id, user_id, reviewer_name, review_text,
	overall_rating, social_rating, work_rating, surroundings_rating, facilities_rating, price_rating,
	social_notes, work_notes, surroundings_notes, facilities_notes, price_notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	var id int64
	err := reviewRepo.Pool.QueryRow(ctx, query,
		r.ListingId, r.UserId, r.ReviewerName, r.ReviewText,
		r.OverallRating, r.SocialRating, r.WorkRating, r.SurroundingsRating, r.FacilitiesRating, r.PriceRating,
		r.SocialNotes, r.WorkNotes, r.SurroundingsNotes, r.FacilitiesNotes, r.PriceNotes,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, customerror.ErrAlreadyExists
		}
		if isPermissionDenied(err) {
			return 0, customerror.ErrPermissionDenied
		}
		return 0, customerror.NewError("reviewRepo.InsertReview", reviewRepo.Host+":"+reviewRepo.Port, err.Error())
	}
	return id, nil
}
