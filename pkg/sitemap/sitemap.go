package sitemap

import (
	"fmt"
	"strings"
	"time"
)

type URL struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// StaticRoutes is the fixed table of always-present pages with
// hand-assigned priorities.
func StaticRoutes(now time.Time) []URL {
	return []URL{
		{Path: "/", LastMod: now, ChangeFreq: "daily", Priority: 1.0},
		{Path: "/coliving-deals", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
		{Path: "/blog", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
		{Path: "/exclusive-deals", LastMod: now, ChangeFreq: "weekly", Priority: 0.8},
		{Path: "/become-partner", LastMod: now, ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/about", LastMod: now, ChangeFreq: "monthly", Priority: 0.7},
	}
}

func Render(baseUrl string, urls []URL) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, url := range urls {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + escape(baseUrl+url.Path) + "</loc>\n")
		b.WriteString("    <lastmod>" + url.LastMod.Format("2006-01-02") + "</lastmod>\n")
		b.WriteString("    <changefreq>" + url.ChangeFreq + "</changefreq>\n")
		b.WriteString(fmt.Sprintf("    <priority>%.1f</priority>\n", url.Priority))
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// Fallback is the minimal valid document served when the store is
// unreachable. It carries only the site root.
func Fallback(baseUrl string, now time.Time) string {
	return Render(baseUrl, []URL{
		{Path: "/", LastMod: now, ChangeFreq: "daily", Priority: 1.0},
	})
}

func Robots(baseUrl string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /auth/\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /*?utm_\n")
	b.WriteString("Crawl-delay: 1\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + baseUrl + "/sitemap.xml\n")
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
