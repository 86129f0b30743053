package service

import (
	"context"

	"colivio/pkg/blog"
	"colivio/pkg/customerror"
	"colivio/pkg/listing"
	"colivio/pkg/review"

	"github.com/jackc/pgx/v5"
)

type ratingUpdate struct {
	id     int64
	rating float64
	count  int32
}

type fakeListingRepository struct {
	listings      []listing.Listing
	images        map[int64][]listing.ListingImage
	takenSlugs    map[string]bool
	inserted      []listing.Listing
	ratingUpdates []ratingUpdate
	ratingErr     error
	activeErr     error
	nextId        int64
}

func newFakeListingRepository(listings ...listing.Listing) *fakeListingRepository {
	takenSlugs := map[string]bool{}
	for _, l := range listings {
		takenSlugs[l.Slug] = true
	}
	return &fakeListingRepository{
		listings:   listings,
		images:     map[int64][]listing.ListingImage{},
		takenSlugs: takenSlugs,
		nextId:     100,
	}
}

func (repo *fakeListingRepository) CreateTables(ctx context.Context) error { return nil }

func (repo *fakeListingRepository) GetListings(ctx context.Context, offset int64, limit int64, filters map[string]any) ([]listing.Listing, error) {
	return repo.listings, nil
}

func (repo *fakeListingRepository) GetListingBySlug(ctx context.Context, slug string, activeOnly bool) (*listing.Listing, error) {
	for i := range repo.listings {
		if repo.listings[i].Slug == slug {
			if activeOnly && repo.listings[i].Status != listing.StatusActive {
				return nil, pgx.ErrNoRows
			}
			l := repo.listings[i]
			return &l, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (repo *fakeListingRepository) GetListingById(ctx context.Context, id int64, activeOnly bool) (*listing.Listing, error) {
	for i := range repo.listings {
		if repo.listings[i].Id == id {
			if activeOnly && repo.listings[i].Status != listing.StatusActive {
				return nil, pgx.ErrNoRows
			}
			l := repo.listings[i]
			return &l, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (repo *fakeListingRepository) GetActiveListings(ctx context.Context) ([]listing.Listing, error) {
	if repo.activeErr != nil {
		return nil, repo.activeErr
	}
	active := []listing.Listing{}
	for _, l := range repo.listings {
		if l.Status == listing.StatusActive {
			active = append(active, l)
		}
	}
	return active, nil
}

func (repo *fakeListingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return repo.takenSlugs[slug], nil
}

func (repo *fakeListingRepository) InsertListing(ctx context.Context, l *listing.Listing) (int64, error) {
	repo.nextId++
	l.Id = repo.nextId
	repo.inserted = append(repo.inserted, *l)
	repo.takenSlugs[l.Slug] = true
	return l.Id, nil
}

func (repo *fakeListingRepository) UpdateListing(ctx context.Context, l *listing.Listing) error {
	return nil
}

func (repo *fakeListingRepository) UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int32) error {
	if repo.ratingErr != nil {
		return repo.ratingErr
	}
	repo.ratingUpdates = append(repo.ratingUpdates, ratingUpdate{id: id, rating: rating, count: reviewCount})
	return nil
}

func (repo *fakeListingRepository) DeleteListing(ctx context.Context, id int64) error { return nil }

func (repo *fakeListingRepository) GetListingImages(ctx context.Context, listingId int64) ([]listing.ListingImage, error) {
	return repo.images[listingId], nil
}

func (repo *fakeListingRepository) InsertListingImage(ctx context.Context, image *listing.ListingImage) error {
	repo.images[image.ListingId] = append(repo.images[image.ListingId], *image)
	return nil
}

func (repo *fakeListingRepository) DeleteListingImage(ctx context.Context, image *listing.ListingImage) error {
	return nil
}

type fakeReviewRepository struct {
	reviews   map[int64][]review.Review
	insertErr error
	nextId    int64
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{
		reviews: map[int64][]review.Review{},
		nextId:  1000,
	}
}

func (repo *fakeReviewRepository) CreateTables(ctx context.Context) error { return nil }

func (repo *fakeReviewRepository) GetReviews(ctx context.Context, listingId int64) ([]review.Review, error) {
	return repo.reviews[listingId], nil
}

func (repo *fakeReviewRepository) InsertReview(ctx context.Context, r *review.Review) (int64, error) {
	if repo.insertErr != nil {
		return 0, repo.insertErr
	}
	repo.nextId++
	r.Id = repo.nextId
	// newest first, like the real ordering
	repo.reviews[r.ListingId] = append([]review.Review{*r}, repo.reviews[r.ListingId]...)
	return r.Id, nil
}

type fakeBlogRepository struct {
	posts     []blog.BlogPost
	postsErr  error
	takenSlug map[string]bool
}

func newFakeBlogRepository(posts ...blog.BlogPost) *fakeBlogRepository {
	takenSlug := map[string]bool{}
	for _, post := range posts {
		takenSlug[post.Slug] = true
	}
	return &fakeBlogRepository{posts: posts, takenSlug: takenSlug}
}

func (repo *fakeBlogRepository) CreateTables(ctx context.Context) error { return nil }

func (repo *fakeBlogRepository) GetPosts(ctx context.Context, offset int64, limit int64, publishedOnly bool) ([]blog.BlogPost, error) {
	return repo.posts, nil
}

func (repo *fakeBlogRepository) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*blog.BlogPost, error) {
	for i := range repo.posts {
		if repo.posts[i].Slug == slug {
			post := repo.posts[i]
			return &post, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (repo *fakeBlogRepository) GetPublishedPosts(ctx context.Context) ([]blog.BlogPost, error) {
	if repo.postsErr != nil {
		return nil, repo.postsErr
	}
	published := []blog.BlogPost{}
	for _, post := range repo.posts {
		if post.Status == blog.StatusPublished {
			published = append(published, post)
		}
	}
	return published, nil
}

func (repo *fakeBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return repo.takenSlug[slug], nil
}

func (repo *fakeBlogRepository) InsertPost(ctx context.Context, post *blog.BlogPost) (int64, error) {
	post.Id = int64(len(repo.posts) + 1)
	repo.posts = append(repo.posts, *post)
	repo.takenSlug[post.Slug] = true
	return post.Id, nil
}

func (repo *fakeBlogRepository) UpdatePost(ctx context.Context, post *blog.BlogPost) error { return nil }

func (repo *fakeBlogRepository) DeletePost(ctx context.Context, id int64) error { return nil }

func repoError(module string) error {
	return customerror.NewError(module, "test", "connection refused")
}
