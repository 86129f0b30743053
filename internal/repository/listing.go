package repository

import (
	"context"
	"errors"
	"fmt"

	"colivio/pkg/customerror"
	"colivio/pkg/listing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetListings(ctx context.Context, offset int64, limit int64, filters map[string]any) ([]listing.Listing, error)
	GetListingBySlug(ctx context.Context, slug string, activeOnly bool) (*listing.Listing, error)
	GetListingById(ctx context.Context, id int64, activeOnly bool) (*listing.Listing, error)
	GetActiveListings(ctx context.Context) ([]listing.Listing, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	InsertListing(ctx context.Context, l *listing.Listing) (int64, error)
	UpdateListing(ctx context.Context, l *listing.Listing) error
	UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int32) error
	DeleteListing(ctx context.Context, id int64) error

	GetListingImages(ctx context.Context, listingId int64) ([]listing.ListingImage, error)
	InsertListingImage(ctx context.Context, image *listing.ListingImage) error
	DeleteListingImage(ctx context.Context, image *listing.ListingImage) error
}

type ListingRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewListingRepository(pool *pgxpool.Pool, host string, port string) ListingRepositoryI {
	return &ListingRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

const listingColumns = `id, title, slug, description, location, country, status,
	original_price, discounted_price, discount_type, discount_value, pricing_unit,
	capacity, rooms, featured_image, is_seasonal, seasonal_start_date, seasonal_end_date,
	work_wifi_info, community_info, comfort_info, location_info,
	rating, review_count, created_by_id, created_at, updated_at`

func (listingRepo *ListingRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		original_price BIGINT NOT NULL DEFAULT 0,
		discounted_price BIGINT,
		discount_type TEXT,
		discount_value BIGINT,
		pricing_unit TEXT NOT NULL DEFAULT 'month',
		capacity INTEGER DEFAULT 0,
		rooms INTEGER DEFAULT 0,
		featured_image TEXT DEFAULT '',
		is_seasonal BOOLEAN DEFAULT FALSE,
		seasonal_start_date DATE,
		seasonal_end_date DATE,
		work_wifi_info TEXT DEFAULT '',
		community_info TEXT DEFAULT '',
		comfort_info TEXT DEFAULT '',
		location_info TEXT DEFAULT '',
		rating DOUBLE PRECISION DEFAULT 0,
		review_count INTEGER DEFAULT 0,
		created_by_id UUID NOT NULL REFERENCES admins(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := listingRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("listingRepo.CreateTables", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}

	createImageTableQuery := `
	CREATE TABLE IF NOT EXISTS listing_images (
		id BIGSERIAL PRIMARY KEY,
		listing_id BIGINT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		url TEXT NOT NULL DEFAULT '',
		filename TEXT NOT NULL DEFAULT ''
	);`
	_, err = listingRepo.Pool.Exec(ctx, createImageTableQuery)
	if err != nil {
		return customerror.NewError("listingRepo.CreateTables", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}

	createIndexQuery := `CREATE INDEX IF NOT EXISTS listings_slug_idx ON listings(slug);`
	_, err = listingRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("listingRepo.CreateTables", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}

	createIndexQuery = `CREATE INDEX IF NOT EXISTS listings_status_idx ON listings(status);`
	_, err = listingRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("listingRepo.CreateTables", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}

	createIndexQuery = `CREATE INDEX IF NOT EXISTS listing_images_listing_id_idx ON listing_images(listing_id);`
	_, err = listingRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("listingRepo.CreateTables", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return nil
}

func scanListing(row pgx.Row) (*listing.Listing, error) {
	var l listing.Listing
	err := row.Scan(
		&l.Id,
		&l.Title,
		&l.Slug,
		&l.Description,
		&l.Location,
		&l.Country,
		&l.Status,
		&l.OriginalPrice,
		&l.DiscountedPrice,
		&l.DiscountType,
		&l.DiscountValue,
		&l.PricingUnit,
		&l.Capacity,
		&l.Rooms,
		&l.FeaturedImage,
		&l.IsSeasonal,
		&l.SeasonalStart,
		&l.SeasonalEnd,
		&l.WorkWifiInfo,
		&l.CommunityInfo,
		&l.ComfortInfo,
		&l.LocationInfo,
		&l.Rating,
		&l.ReviewCount,
		&l.CreatedById,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (listingRepo *ListingRepository) GetListings(ctx context.Context, offset int64, limit int64, filters map[string]any) ([]listing.Listing, error) {
	listings := []listing.Listing{}
	filtersCount := 1
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id IS NOT NULL`
	params := []any{}

	if filters["status"] != nil {
		query += " AND status = $" + fmt.Sprint(filtersCount)
		params = append(params, filters["status"])
		filtersCount++
	}

	if filters["location"] != nil {
		query += " AND strpos(lower(location), lower($" + fmt.Sprint(filtersCount) + ")) > 0 "
		params = append(params, filters["location"])
		filtersCount++
	}

	if filters["country"] != nil {
		query += " AND country = $" + fmt.Sprint(filtersCount)
		params = append(params, filters["country"])
		filtersCount++
	}

	if filters["price_from"] != nil {
		query += " AND original_price >= $" + fmt.Sprint(filtersCount)
		params = append(params, filters["price_from"])
		filtersCount++
	}

	if filters["price_to"] != nil {
		query += " AND original_price <= $" + fmt.Sprint(filtersCount)
		params = append(params, filters["price_to"])
		filtersCount++
	}

	if filters["capacity_from"] != nil {
		query += " AND capacity >= $" + fmt.Sprint(filtersCount)
		params = append(params, filters["capacity_from"])
		filtersCount++
	}

	if filters["pricing_unit"] != nil {
		query += " AND pricing_unit = $" + fmt.Sprint(filtersCount)
		params = append(params, filters["pricing_unit"])
		filtersCount++
	}

	params = append(params, offset, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC OFFSET $%d LIMIT $%d;`, filtersCount, filtersCount+1)
	rows, err := listingRepo.Pool.Query(ctx, query, params...)
	if err != nil {
		return nil, customerror.NewError("listingRepo.GetListings", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, customerror.NewError("listingRepo.GetListings", listingRepo.Host+":"+listingRepo.Port, err.Error())
		}
		listings = append(listings, *l)
	}
	return listings, nil
}

func (listingRepo *ListingRepository) GetListingBySlug(ctx context.Context, slug string, activeOnly bool) (*listing.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE slug = $1`
	if activeOnly {
		query += ` AND status = 'active'`
	}
	l, err := scanListing(listingRepo.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("listingRepo.GetListingBySlug", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return l, nil
}

func (listingRepo *ListingRepository) GetListingById(ctx context.Context, id int64, activeOnly bool) (*listing.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	if activeOnly {
		query += ` AND status = 'active'`
	}
	l, err := scanListing(listingRepo.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("listingRepo.GetListingById", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return l, nil
}

func (listingRepo *ListingRepository) GetActiveListings(ctx context.Context) ([]listing.Listing, error) {
	listings := []listing.Listing{}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE status = 'active' ORDER BY created_at DESC`
	rows, err := listingRepo.Pool.Query(ctx, query)
	if err != nil {
		return nil, customerror.NewError("listingRepo.GetActiveListings", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, customerror.NewError("listingRepo.GetActiveListings", listingRepo.Host+":"+listingRepo.Port, err.Error())
		}
		listings = append(listings, *l)
	}
	return listings, nil
}

func (listingRepo *ListingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM listings WHERE slug = $1)`
	err := listingRepo.Pool.QueryRow(ctx, query, slug).Scan(&exists)
	if err != nil {
		return false, customerror.NewError("listingRepo.SlugExists", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return exists, nil
}

func (listingRepo *ListingRepository) InsertListing(ctx context.Context, l *listing.Listing) (int64, error) {
	query := `INSERT INTO listings (title, slug, description, location, country, status,
	original_price, discounted_price, discount_type, discount_value, pricing_unit,
	capacity, rooms, featured_image, is_seasonal, seasonal_start_date, seasonal_end_date,
	work_wifi_info, community_info, comfort_info, location_info, created_by_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22) RETURNING id`
	var id int64
	err := listingRepo.Pool.QueryRow(ctx, query,
		l.Title, l.Slug, l.Description, l.Location, l.Country, l.Status,
		l.OriginalPrice, l.DiscountedPrice, l.DiscountType, l.DiscountValue, l.PricingUnit,
		l.Capacity, l.Rooms, l.FeaturedImage, l.IsSeasonal, l.SeasonalStart, l.SeasonalEnd,
		l.WorkWifiInfo, l.CommunityInfo, l.ComfortInfo, l.LocationInfo, l.CreatedById,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, customerror.ErrAlreadyExists
		}
		return 0, customerror.NewError("listingRepo.InsertListing", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return id, nil
}

func (listingRepo *ListingRepository) UpdateListing(ctx context.Context, l *listing.Listing) error {
	query := `UPDATE listings SET title = $1, slug = $2, description = $3, location = $4, country = $5,
	status = $6, original_price = $7, discounted_price = $8, discount_type = $9, discount_value = $10,
	pricing_unit = $11, capacity = $12, rooms = $13, featured_image = $14, is_seasonal = $15,
	seasonal_start_date = $16, seasonal_end_date = $17, work_wifi_info = $18, community_info = $19,
	comfort_info = $20, location_info = $21, updated_at = CURRENT_TIMESTAMP WHERE id = $22`
	command, err := listingRepo.Pool.Exec(ctx, query,
		l.Title, l.Slug, l.Description, l.Location, l.Country, l.Status,
		l.OriginalPrice, l.DiscountedPrice, l.DiscountType, l.DiscountValue, l.PricingUnit,
		l.Capacity, l.Rooms, l.FeaturedImage, l.IsSeasonal, l.SeasonalStart, l.SeasonalEnd,
		l.WorkWifiInfo, l.CommunityInfo, l.ComfortInfo, l.LocationInfo, l.Id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return customerror.ErrAlreadyExists
		}
		return customerror.NewError("listingRepo.UpdateListing", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (listingRepo *ListingRepository) UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int32) error {
	query := `UPDATE listings SET rating = $1, review_count = $2 WHERE id = $3`
	command, err := listingRepo.Pool.Exec(ctx, query, rating, reviewCount, id)
	if err != nil {
		return customerror.NewError("listingRepo.UpdateRating", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (listingRepo *ListingRepository) DeleteListing(ctx context.Context, id int64) error {
	query := `DELETE FROM listings WHERE id = $1`
	command, err := listingRepo.Pool.Exec(ctx, query, id)
	if err != nil {
		return customerror.NewError("listingRepo.DeleteListing", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (listingRepo *ListingRepository) GetListingImages(ctx context.Context, listingId int64) ([]listing.ListingImage, error) {
	query := `SELECT id, listing_id, url, filename FROM listing_images WHERE listing_id = $1`
	rows, err := listingRepo.Pool.Query(ctx, query, listingId)
	if err != nil {
		return nil, customerror.NewError("listingRepo.GetListingImages", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	var images []listing.ListingImage
	for rows.Next() {
		var image listing.ListingImage
		err := rows.Scan(&image.Id, &image.ListingId, &image.Url, &image.Filename)
		if err != nil {
			return nil, customerror.NewError("listingRepo.GetListingImages", listingRepo.Host+":"+listingRepo.Port, err.Error())
		}
		images = append(images, image)
	}
	return images, nil
}

func (listingRepo *ListingRepository) InsertListingImage(ctx context.Context, image *listing.ListingImage) error {
	query := `INSERT INTO listing_images (listing_id, url, filename) VALUES ($1, $2, $3)`
	_, err := listingRepo.Pool.Exec(ctx, query, image.ListingId, image.Url, image.Filename)
	if err != nil {
		return customerror.NewError("listingRepo.InsertListingImage", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return nil
}

func (listingRepo *ListingRepository) DeleteListingImage(ctx context.Context, image *listing.ListingImage) error {
	query := `DELETE FROM listing_images WHERE id = $1`
	_, err := listingRepo.Pool.Exec(ctx, query, image.Id)
	if err != nil {
		return customerror.NewError("listingRepo.DeleteListingImage", listingRepo.Host+":"+listingRepo.Port, err.Error())
	}
	return nil
}
