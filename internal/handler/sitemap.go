package handler

import (
	"log"
	"net/http"

	"colivio/internal/middlewares"
	"colivio/internal/service"

	"github.com/gin-gonic/gin"
)

type SitemapHandlerI interface {
	RegisterRoutes(router *gin.Engine, adminGroup *gin.RouterGroup)
	GetSitemap(ctx *gin.Context)
	GetRobots(ctx *gin.Context)
	RebuildFiles(ctx *gin.Context)
}

type SitemapHandler struct {
	sitemapService service.SitemapServiceI
	middlewares    middlewares.MiddlewaresI
	host           string
	port           string
}

func NewSitemapHandler(sitemapService service.SitemapServiceI, middlewares middlewares.MiddlewaresI, host string, port string) SitemapHandlerI {
	return &SitemapHandler{
		sitemapService: sitemapService,
		middlewares:    middlewares,
		host:           host,
		port:           port,
	}
}

func (sitemapHandler *SitemapHandler) RegisterRoutes(router *gin.Engine, adminGroup *gin.RouterGroup) {
	router.GET("/sitemap.xml", sitemapHandler.GetSitemap)
	router.GET("/robots.txt", sitemapHandler.GetRobots)
	adminGroup.POST("/sitemap/rebuild", sitemapHandler.middlewares.ValidAdmin(), sitemapHandler.RebuildFiles)
}

func (sitemapHandler *SitemapHandler) GetSitemap(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(sitemapHandler.sitemapService.BuildSitemap()))
}

func (sitemapHandler *SitemapHandler) GetRobots(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sitemapHandler.sitemapService.BuildRobots()))
}

func (sitemapHandler *SitemapHandler) RebuildFiles(ctx *gin.Context) {
	err := sitemapHandler.sitemapService.WriteFiles()
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body":   gin.H{},
		"error":  nil,
	})
}
