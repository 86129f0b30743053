package service

import (
	"context"
	"fmt"
	"time"

	"colivio/internal/repository"
	modelsBlog "colivio/pkg/blog"
	"colivio/pkg/customerror"
	"colivio/pkg/slug"

	"github.com/jackc/pgx/v5"
)

type BlogServiceI interface {
	GetPosts(offset int64, limit int64, publishedOnly bool) ([]modelsBlog.BlogPost, error)
	GetPost(postSlug string, publishedOnly bool) (*modelsBlog.BlogPost, error)
	InsertPost(post *modelsBlog.BlogPost) (int64, error)
	UpdatePost(post *modelsBlog.BlogPost) error
	DeletePost(id int64) error
}

type BlogService struct {
	blogRepo repository.BlogRepositoryI
	host     string
	port     string
}

func NewBlogService(blogRepo repository.BlogRepositoryI, host string, port string) BlogServiceI {
	return &BlogService{
		blogRepo: blogRepo,
		host:     host,
		port:     port,
	}
}

func (blogService *BlogService) GetPosts(offset int64, limit int64, publishedOnly bool) ([]modelsBlog.BlogPost, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	posts, err := blogService.blogRepo.GetPosts(ctx, offset, limit, publishedOnly)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.GetPosts")
		return []modelsBlog.BlogPost{}, customeErr
	}
	return posts, nil
}

func (blogService *BlogService) GetPost(postSlug string, publishedOnly bool) (*modelsBlog.BlogPost, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	post, err := blogService.blogRepo.GetPostBySlug(ctx, postSlug, publishedOnly)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.GetPost")
		return nil, customeErr
	}
	return post, nil
}

func (blogService *BlogService) InsertPost(post *modelsBlog.BlogPost) (int64, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	uniqueSlug, err := blogService.uniqueSlug(ctx, post.Title)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.InsertPost")
		return 0, customeErr
	}
	post.Slug = uniqueSlug
	post.ReadTime = modelsBlog.ReadTime(post.Content)
	if post.Status == "" {
		post.Status = modelsBlog.StatusDraft
	}
	id, err := blogService.blogRepo.InsertPost(ctx, post)
	if err == customerror.ErrAlreadyExists {
		return 0, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.InsertPost")
		return 0, customeErr
	}
	return id, nil
}

func (blogService *BlogService) UpdatePost(post *modelsBlog.BlogPost) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	current, err := blogService.blogRepo.GetPostBySlug(ctx, post.Slug, false)
	if err != nil && err != pgx.ErrNoRows {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.UpdatePost")
		return customeErr
	}
	if current != nil && current.Id != post.Id {
		return customerror.ErrAlreadyExists
	}
	post.ReadTime = modelsBlog.ReadTime(post.Content)
	err = blogService.blogRepo.UpdatePost(ctx, post)
	if err == pgx.ErrNoRows || err == customerror.ErrAlreadyExists {
		return err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.UpdatePost")
		return customeErr
	}
	return nil
}

func (blogService *BlogService) DeletePost(id int64) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := blogService.blogRepo.DeletePost(ctx, id)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("BlogService.DeletePost")
		return customeErr
	}
	return nil
}

func (blogService *BlogService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Generate(title)
	if base == "" {
		base = "post"
	}
	candidate := base
	for suffix := 2; ; suffix++ {
		exists, err := blogService.blogRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}
