package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"colivio/internal/repository"
	"colivio/pkg/customerror"
	"colivio/pkg/sitemap"
)

type SitemapServiceI interface {
	BuildSitemap() string
	BuildRobots() string
	WriteFiles() error
}

type SitemapService struct {
	listingRepo repository.ListingRepositoryI
	blogRepo    repository.BlogRepositoryI
	host        string
	port        string
	mainUrl     string
	publicDir   string
}

func NewSitemapService(listingRepo repository.ListingRepositoryI, blogRepo repository.BlogRepositoryI, host string, port string, mainUrl string, publicDir string) SitemapServiceI {
	return &SitemapService{
		listingRepo: listingRepo,
		blogRepo:    blogRepo,
		host:        host,
		port:        port,
		mainUrl:     mainUrl,
		publicDir:   publicDir,
	}
}

// BuildSitemap renders the full document from the static route table plus
// every active listing and published post. A store failure degrades to the
// single-root fallback document, it never propagates.
func (sitemapService *SitemapService) BuildSitemap() string {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	now := time.Now()
	listings, err := sitemapService.listingRepo.GetActiveListings(ctx)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("SitemapService.BuildSitemap")
		log.Print(customeErr.Error())
		return sitemap.Fallback(sitemapService.mainUrl, now)
	}
	posts, err := sitemapService.blogRepo.GetPublishedPosts(ctx)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("SitemapService.BuildSitemap")
		log.Print(customeErr.Error())
		return sitemap.Fallback(sitemapService.mainUrl, now)
	}

	urls := sitemap.StaticRoutes(now)
	for i := range listings {
		urls = append(urls, sitemap.URL{
			Path:       "/colivings/" + listings[i].Slug,
			LastMod:    listings[i].UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}
	for i := range posts {
		urls = append(urls, sitemap.URL{
			Path:       "/blog/" + posts[i].Slug,
			LastMod:    posts[i].UpdatedAt,
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}
	return sitemap.Render(sitemapService.mainUrl, urls)
}

func (sitemapService *SitemapService) BuildRobots() string {
	return sitemap.Robots(sitemapService.mainUrl)
}

func (sitemapService *SitemapService) WriteFiles() error {
	if err := os.MkdirAll(sitemapService.publicDir, 0755); err != nil {
		return customerror.NewError("SitemapService.WriteFiles.MkdirAll", sitemapService.host+":"+sitemapService.port, err.Error())
	}
	sitemapPath := filepath.Join(sitemapService.publicDir, "sitemap.xml")
	if err := os.WriteFile(sitemapPath, []byte(sitemapService.BuildSitemap()), 0644); err != nil {
		return customerror.NewError("SitemapService.WriteFiles.Sitemap", sitemapService.host+":"+sitemapService.port, err.Error())
	}
	robotsPath := filepath.Join(sitemapService.publicDir, "robots.txt")
	if err := os.WriteFile(robotsPath, []byte(sitemapService.BuildRobots()), 0644); err != nil {
		return customerror.NewError("SitemapService.WriteFiles.Robots", sitemapService.host+":"+sitemapService.port, err.Error())
	}
	return nil
}
