package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"colivio/pkg/blog"
	"colivio/pkg/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseUrl = "https://colivio.example.com"

func publishedPost(id int64, slug string) blog.BlogPost {
	return blog.BlogPost{
		Id:        id,
		Slug:      slug,
		Status:    blog.StatusPublished,
		UpdatedAt: time.Now(),
	}
}

func TestBuildSitemapIncludesListingsAndPosts(t *testing.T) {
	inactive := activeListing(3, "hidden-space")
	inactive.Status = listing.StatusInactive
	listingRepo := newFakeListingRepository(
		activeListing(1, "casa-lisbon"),
		activeListing(2, "sun-co-javea"),
		inactive,
	)
	draft := publishedPost(2, "unfinished")
	draft.Status = blog.StatusDraft
	blogRepo := newFakeBlogRepository(publishedPost(1, "best-colivings-2024"), draft)
	sitemapService := NewSitemapService(listingRepo, blogRepo, "localhost", "8080", testBaseUrl, t.TempDir())

	doc := sitemapService.BuildSitemap()
	// 6 static routes + 2 active listings + 1 published post
	assert.Equal(t, 9, strings.Count(doc, "<url>"))
	assert.Contains(t, doc, "<loc>"+testBaseUrl+"/colivings/casa-lisbon</loc>")
	assert.Contains(t, doc, "<loc>"+testBaseUrl+"/colivings/sun-co-javea</loc>")
	assert.Contains(t, doc, "<loc>"+testBaseUrl+"/blog/best-colivings-2024</loc>")
	assert.NotContains(t, doc, "hidden-space")
	assert.NotContains(t, doc, "unfinished")
}

func TestBuildSitemapFallsBackOnListingError(t *testing.T) {
	listingRepo := newFakeListingRepository()
	listingRepo.activeErr = repoError("fake.GetActiveListings")
	sitemapService := NewSitemapService(listingRepo, newFakeBlogRepository(), "localhost", "8080", testBaseUrl, t.TempDir())

	doc := sitemapService.BuildSitemap()
	assert.Equal(t, 1, strings.Count(doc, "<url>"))
	assert.Contains(t, doc, "<loc>"+testBaseUrl+"/</loc>")
}

func TestBuildSitemapFallsBackOnBlogError(t *testing.T) {
	blogRepo := newFakeBlogRepository()
	blogRepo.postsErr = repoError("fake.GetPublishedPosts")
	sitemapService := NewSitemapService(newFakeListingRepository(activeListing(1, "casa-lisbon")), blogRepo, "localhost", "8080", testBaseUrl, t.TempDir())

	doc := sitemapService.BuildSitemap()
	assert.Equal(t, 1, strings.Count(doc, "<url>"))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	sitemapService := NewSitemapService(newFakeListingRepository(activeListing(1, "casa-lisbon")), newFakeBlogRepository(), "localhost", "8080", testBaseUrl, dir)

	require.NoError(t, sitemapService.WriteFiles())

	sitemapBytes, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemapBytes), "casa-lisbon")

	robotsBytes, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robotsBytes), "Sitemap: "+testBaseUrl+"/sitemap.xml")
}
