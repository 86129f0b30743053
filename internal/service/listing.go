package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"colivio/internal/repository"
	"colivio/pkg/admin"
	"colivio/pkg/customerror"
	modelsListing "colivio/pkg/listing"
	"colivio/pkg/review"
	"colivio/pkg/slug"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListingDetail is the public detail payload: the listing with its fresh
// cached rating, the reviews newest-first, and the computed averages.
type ListingDetail struct {
	Listing  *modelsListing.Listing       `json:"listing"`
	Reviews  []review.Review              `json:"reviews"`
	Averages review.Averages              `json:"averages"`
	Images   []modelsListing.ListingImage `json:"images"`
}

type ListingServiceI interface {
	GetListings(offset int64, limit int64, filters map[string]any) ([]modelsListing.Listing, error)
	GetListingDetail(listingSlug string) (*ListingDetail, error)
	ResolveLegacySlug(id int64) (string, error)
	InsertListing(l *modelsListing.Listing, creator *admin.Admin) (int64, error)
	UpdateListing(l *modelsListing.Listing) error
	DeleteListing(id int64) error
	GetListingImages(listingId int64) ([]modelsListing.ListingImage, error)
	InsertListingImage(file *multipart.FileHeader, l *modelsListing.Listing) error
	DeleteListingImage(image *modelsListing.ListingImage) error
}

type ListingService struct {
	listingRepo repository.ListingRepositoryI
	reviewRepo  repository.ReviewRepositoryI
	host        string
	port        string
	mainUrl     string
}

func NewListingService(listingRepo repository.ListingRepositoryI, reviewRepo repository.ReviewRepositoryI, host string, port string, mainUrl string) ListingServiceI {
	return &ListingService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		host:        host,
		port:        port,
		mainUrl:     mainUrl,
	}
}

func (listingService *ListingService) GetListings(offset int64, limit int64, filters map[string]any) ([]modelsListing.Listing, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	listings, err := listingService.listingRepo.GetListings(ctx, offset, limit, filters)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.GetListings")
		return []modelsListing.Listing{}, customeErr
	}
	return listings, nil
}

func (listingService *ListingService) GetListingDetail(listingSlug string) (*ListingDetail, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	l, err := listingService.listingRepo.GetListingBySlug(ctx, listingSlug, true)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.GetListingDetail")
		return nil, customeErr
	}
	reviews, err := listingService.reviewRepo.GetReviews(ctx, l.Id)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.GetListingDetail")
		return nil, customeErr
	}
	images, err := listingService.listingRepo.GetListingImages(ctx, l.Id)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.GetListingDetail")
		return nil, customeErr
	}
	averages := refreshListingRating(ctx, listingService.listingRepo, l, reviews)
	return &ListingDetail{
		Listing:  l,
		Reviews:  reviews,
		Averages: averages,
		Images:   images,
	}, nil
}

func (listingService *ListingService) ResolveLegacySlug(id int64) (string, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	l, err := listingService.listingRepo.GetListingById(ctx, id, true)
	if err == pgx.ErrNoRows {
		return "", err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.ResolveLegacySlug")
		return "", customeErr
	}
	return l.Slug, nil
}

func (listingService *ListingService) InsertListing(l *modelsListing.Listing, creator *admin.Admin) (int64, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	uniqueSlug, err := listingService.uniqueSlug(ctx, l.Title)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.InsertListing")
		return 0, customeErr
	}
	l.Slug = uniqueSlug
	l.CreatedById = creator.UUID
	if l.Status == "" {
		l.Status = modelsListing.StatusPending
	}
	id, err := listingService.listingRepo.InsertListing(ctx, l)
	if err == customerror.ErrAlreadyExists {
		return 0, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.InsertListing")
		return 0, customeErr
	}
	return id, nil
}

func (listingService *ListingService) UpdateListing(l *modelsListing.Listing) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	current, err := listingService.listingRepo.GetListingById(ctx, l.Id, false)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.UpdateListing")
		return customeErr
	}
	// The slug is stable once assigned; old URLs keep working across edits.
	l.Slug = current.Slug
	err = listingService.listingRepo.UpdateListing(ctx, l)
	if err == pgx.ErrNoRows || err == customerror.ErrAlreadyExists {
		return err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.UpdateListing")
		return customeErr
	}
	return nil
}

func (listingService *ListingService) DeleteListing(id int64) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := listingService.listingRepo.DeleteListing(ctx, id)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.DeleteListing")
		return customeErr
	}
	return nil
}

func (listingService *ListingService) GetListingImages(listingId int64) ([]modelsListing.ListingImage, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	images, err := listingService.listingRepo.GetListingImages(ctx, listingId)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.GetListingImages")
		return []modelsListing.ListingImage{}, customeErr
	}
	return images, nil
}

func (listingService *ListingService) InsertListingImage(file *multipart.FileHeader, l *modelsListing.Listing) error {
	fileUUID := uuid.New().String()
	timestamp := time.Now().Unix()
	fileExt := filepath.Ext(file.Filename)
	uploadPath := filepath.Join(".", "media", "listings", strconv.FormatInt(l.Id, 10))
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		return customerror.NewError("ListingService.InsertListingImage.MkdirAll", listingService.host+":"+listingService.port, err.Error())
	}
	if fileExt != ".jpg" && fileExt != ".jpeg" && fileExt != ".png" && fileExt != ".webp" {
		return customerror.NewError("ListingService.InsertListingImage.FileExt", listingService.host+":"+listingService.port, "Invalid file extension")
	}
	newFilename := fmt.Sprintf("%s_%d%s", fileUUID, timestamp, fileExt)
	fullPath := filepath.Join(uploadPath, newFilename)
	src, err := file.Open()
	if err != nil {
		return customerror.NewError("ListingService.InsertListingImage.Open", listingService.host+":"+listingService.port, err.Error())
	}
	defer src.Close()
	dst, err := os.Create(fullPath)
	if err != nil {
		return customerror.NewError("ListingService.InsertListingImage.Create", listingService.host+":"+listingService.port, err.Error())
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	if err != nil {
		return customerror.NewError("ListingService.InsertListingImage.Copy", listingService.host+":"+listingService.port, err.Error())
	}
	image := modelsListing.ListingImage{
		ListingId: l.Id,
		Url:       fmt.Sprintf("%s/media/listings/%d/%s", listingService.mainUrl, l.Id, newFilename),
		Filename:  newFilename,
	}
	c, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	err = listingService.listingRepo.InsertListingImage(c, &image)
	if err != nil {
		return customerror.NewError("ListingService.InsertListingImage", listingService.host+":"+listingService.port, err.Error())
	}
	return nil
}

func (listingService *ListingService) DeleteListingImage(image *modelsListing.ListingImage) error {
	tempFilename := image.Filename
	tempListingId := image.ListingId
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := listingService.listingRepo.DeleteListingImage(ctx, image)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("ListingService.DeleteListingImage")
		return customeErr
	}
	go listingService.deleteFile(filepath.Join(".", "media", "listings", strconv.FormatInt(tempListingId, 10), tempFilename))
	return nil
}

func (listingService *ListingService) deleteFile(path string) {
	err := os.Remove(path)
	if err != nil {
		customeErr := customerror.NewError("ListingService.deleteFile", listingService.host+":"+listingService.port, err.Error()).(customerror.CustomError)
		log.Println(customeErr)
	}
}

func (listingService *ListingService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Generate(title)
	if base == "" {
		base = "listing"
	}
	candidate := base
	for suffix := 2; ; suffix++ {
		exists, err := listingService.listingRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// refreshListingRating recomputes the averages and writes the rounded
// overall rating and review count back onto the listing row. The cached
// columns are derived data; a failed write-back is logged and swallowed so
// the caller still gets correct in-memory numbers.
func refreshListingRating(ctx context.Context, listingRepo repository.ListingRepositoryI, l *modelsListing.Listing, reviews []review.Review) review.Averages {
	averages := review.Aggregate(reviews)
	l.Rating = review.RoundRating(averages.Overall)
	l.ReviewCount = int32(len(reviews))
	if len(reviews) == 0 {
		return averages
	}
	err := listingRepo.UpdateRating(ctx, l.Id, l.Rating, l.ReviewCount)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("ERROR|refreshListingRating|listing %d:%s", l.Id, err.Error())
	}
	return averages
}
