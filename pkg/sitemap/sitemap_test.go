package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const baseUrl = "https://colivio.example.com"

func TestStaticRoutes(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	routes := StaticRoutes(now)
	assert.Len(t, routes, 6)

	expected := map[string]float64{
		"/":                1.0,
		"/coliving-deals":  0.9,
		"/blog":            0.9,
		"/exclusive-deals": 0.8,
		"/become-partner":  0.8,
		"/about":           0.7,
	}
	for _, route := range routes {
		priority, ok := expected[route.Path]
		assert.True(t, ok, "unexpected route %s", route.Path)
		assert.Equal(t, priority, route.Priority, "priority for %s", route.Path)
	}
}

func TestRender(t *testing.T) {
	lastMod := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	doc := Render(baseUrl, []URL{
		{Path: "/colivings/sun-co-javea", LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.8},
	})

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, doc, "<loc>"+baseUrl+"/colivings/sun-co-javea</loc>")
	assert.Contains(t, doc, "<lastmod>2024-05-20</lastmod>")
	assert.Contains(t, doc, "<changefreq>weekly</changefreq>")
	assert.Contains(t, doc, "<priority>0.8</priority>")
	assert.Contains(t, doc, "</urlset>")
}

func TestRenderEntryCount(t *testing.T) {
	now := time.Now()
	urls := StaticRoutes(now)
	urls = append(urls,
		URL{Path: "/colivings/a", LastMod: now, ChangeFreq: "weekly", Priority: 0.8},
		URL{Path: "/colivings/b", LastMod: now, ChangeFreq: "weekly", Priority: 0.8},
		URL{Path: "/blog/post", LastMod: now, ChangeFreq: "monthly", Priority: 0.7},
	)
	doc := Render(baseUrl, urls)
	assert.Equal(t, 9, strings.Count(doc, "<url>"))
	assert.Equal(t, 9, strings.Count(doc, "</url>"))
}

func TestRenderEscapesLoc(t *testing.T) {
	doc := Render(baseUrl, []URL{
		{Path: "/search?a=1&b=2", LastMod: time.Now(), ChangeFreq: "daily", Priority: 0.5},
	})
	assert.Contains(t, doc, "a=1&amp;b=2")
	assert.NotContains(t, doc, "a=1&b=2<")
}

func TestFallback(t *testing.T) {
	doc := Fallback(baseUrl, time.Now())
	assert.Equal(t, 1, strings.Count(doc, "<url>"))
	assert.Contains(t, doc, "<loc>"+baseUrl+"/</loc>")
	assert.Contains(t, doc, "<priority>1.0</priority>")
}

func TestRobots(t *testing.T) {
	robots := Robots(baseUrl)
	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Disallow: /admin/")
	assert.Contains(t, robots, "Disallow: /auth/")
	assert.Contains(t, robots, "Disallow: /api/")
	assert.Contains(t, robots, "Disallow: /*?utm_")
	assert.Contains(t, robots, "Crawl-delay: 1")
	assert.Contains(t, robots, "Sitemap: "+baseUrl+"/sitemap.xml")
}
