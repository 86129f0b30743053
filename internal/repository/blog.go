package repository

import (
	"context"
	"errors"

	"colivio/pkg/blog"
	"colivio/pkg/customerror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BlogRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetPosts(ctx context.Context, offset int64, limit int64, publishedOnly bool) ([]blog.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*blog.BlogPost, error)
	GetPublishedPosts(ctx context.Context) ([]blog.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	InsertPost(ctx context.Context, post *blog.BlogPost) (int64, error)
	UpdatePost(ctx context.Context, post *blog.BlogPost) error
	DeletePost(ctx context.Context, id int64) error
}

type BlogRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewBlogRepository(pool *pgxpool.Pool, host string, port string) BlogRepositoryI {
	return &BlogRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

const blogColumns = `id, title, slug, content, excerpt, category, author,
	featured_image, featured_image_alt, status, featured, read_time, linked_listings,
	created_at, updated_at`

func (blogRepo *BlogRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS blog_posts (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		content TEXT NOT NULL DEFAULT '',
		excerpt TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		featured_image TEXT NOT NULL DEFAULT '',
		featured_image_alt TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft',
		featured BOOLEAN DEFAULT FALSE,
		read_time INTEGER DEFAULT 1,
		linked_listings BIGINT[] DEFAULT '{}',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := blogRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("blogRepo.CreateTables", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}

	createIndexQuery := `CREATE INDEX IF NOT EXISTS blog_posts_slug_idx ON blog_posts(slug);`
	_, err = blogRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("blogRepo.CreateTables", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	return nil
}

func scanPost(row pgx.Row) (*blog.BlogPost, error) {
	var post blog.BlogPost
	err := row.Scan(
		&post.Id,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.Category,
		&post.Author,
		&post.FeaturedImage,
		&post.FeaturedImageAlt,
		&post.Status,
		&post.Featured,
		&post.ReadTime,
		&post.LinkedListings,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (blogRepo *BlogRepository) GetPosts(ctx context.Context, offset int64, limit int64, publishedOnly bool) ([]blog.BlogPost, error) {
	posts := []blog.BlogPost{}
	query := `SELECT ` + blogColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE status = 'published'`
	}
	query += ` ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := blogRepo.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, customerror.NewError("blogRepo.GetPosts", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, customerror.NewError("blogRepo.GetPosts", blogRepo.Host+":"+blogRepo.Port, err.Error())
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func (blogRepo *BlogRepository) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*blog.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`
	if publishedOnly {
		query += ` AND status = 'published'`
	}
	post, err := scanPost(blogRepo.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("blogRepo.GetPostBySlug", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	return post, nil
}

func (blogRepo *BlogRepository) GetPublishedPosts(ctx context.Context) ([]blog.BlogPost, error) {
	posts := []blog.BlogPost{}
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE status = 'published' ORDER BY created_at DESC`
	rows, err := blogRepo.Pool.Query(ctx, query)
	if err != nil {
		return nil, customerror.NewError("blogRepo.GetPublishedPosts", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, customerror.NewError("blogRepo.GetPublishedPosts", blogRepo.Host+":"+blogRepo.Port, err.Error())
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func (blogRepo *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1)`
	err := blogRepo.Pool.QueryRow(ctx, query, slug).Scan(&exists)
	if err != nil {
		return false, customerror.NewError("blogRepo.SlugExists", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	return exists, nil
}

func (blogRepo *BlogRepository) InsertPost(ctx context.Context, post *blog.BlogPost) (int64, error) {
	query := `INSERT INTO blog_posts (title, slug, content, excerpt, category, author,
	featured_image, featured_image_alt, status, featured, read_time, linked_listings)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	var id int64
	err := blogRepo.Pool.QueryRow(ctx, query,
		post.Title, post.Slug, post.Content, post.Excerpt, post.Category, post.Author,
		post.FeaturedImage, post.FeaturedImageAlt, post.Status, post.Featured, post.ReadTime, post.LinkedListings,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, customerror.ErrAlreadyExists
		}
		return 0, customerror.NewError("blogRepo.InsertPost", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	return id, nil
}

func (blogRepo *BlogRepository) UpdatePost(ctx context.Context, post *blog.BlogPost) error {
	query := `UPDATE blog_posts SET title = $1, slug = $2, content = $3, excerpt = $4, category = $5,
	author = $6, featured_image = $7, featured_image_alt = $8, status = $9, featured = $10,
	read_time = $11, linked_listings = $12, updated_at = CURRENT_TIMESTAMP WHERE id = $13`
	command, err := blogRepo.Pool.Exec(ctx, query,
		post.Title, post.Slug, post.Content, post.Excerpt, post.Category,
		post.Author, post.FeaturedImage, post.FeaturedImageAlt, post.Status, post.Featured,
		post.ReadTime, post.LinkedListings, post.Id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return customerror.ErrAlreadyExists
		}
		return customerror.NewError("blogRepo.UpdatePost", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (blogRepo *BlogRepository) DeletePost(ctx context.Context, id int64) error {
	query := `DELETE FROM blog_posts WHERE id = $1`
	command, err := blogRepo.Pool.Exec(ctx, query, id)
	if err != nil {
		return customerror.NewError("blogRepo.DeletePost", blogRepo.Host+":"+blogRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
