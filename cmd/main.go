package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"colivio/internal/handler"
	"colivio/internal/middlewares"
	"colivio/internal/repository"
	"colivio/internal/service"
	"colivio/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

func initSitemapJob(sitemapService service.SitemapServiceI) {
	c := cron.New()

	// Every night at 03:00, after the day's edits have settled.
	_, err := c.AddFunc("0 3 * * *", func() {
		if err := sitemapService.WriteFiles(); err != nil {
			log.Print(err.Error())
		}
	})

	if err != nil {
		log.Fatalf("Failed to schedule sitemap job: %v", err)
	}

	go c.Start()
}

func main() {
	config, err := config.NewConfig(".env")
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", config.DbUser, config.DbPassword, config.DbHost, config.DbPort, config.DbName)
	dbconfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	dbconfig.MaxConns = 100
	dbconfig.MinConns = 10
	dbconfig.MaxConnLifetime = 1 * time.Hour
	dbconfig.MaxConnIdleTime = 15 * time.Minute
	pool, err := pgxpool.NewWithConfig(context.Background(), dbconfig)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("%s", err.Error())
	}

	adminRepository := repository.NewAdminRepository(pool, config.WebHost, config.WebPort)
	listingRepository := repository.NewListingRepository(pool, config.WebHost, config.WebPort)
	reviewRepository := repository.NewReviewRepository(pool, config.WebHost, config.WebPort)
	blogRepository := repository.NewBlogRepository(pool, config.WebHost, config.WebPort)
	formsRepository := repository.NewFormsRepository(pool, config.WebHost, config.WebPort)

	err = adminRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = listingRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = reviewRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = blogRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = formsRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}

	jwtService := service.NewJWTService(config, adminRepository)
	middlewares := middlewares.NewMiddlewares(jwtService, config.WebHost, config.WebPort)
	adminService := service.NewAdminService(adminRepository, config.WebHost, config.WebPort)
	listingService := service.NewListingService(listingRepository, reviewRepository, config.WebHost, config.WebPort, config.MainUrl)
	reviewService := service.NewReviewService(reviewRepository, listingRepository, config.WebHost, config.WebPort)
	blogService := service.NewBlogService(blogRepository, config.WebHost, config.WebPort)
	formsService := service.NewFormsService(formsRepository, config.WebHost, config.WebPort)
	sitemapService := service.NewSitemapService(listingRepository, blogRepository, config.WebHost, config.WebPort, config.MainUrl, config.PublicDir)

	err = adminService.EnsureSuperUser(config.AdminEmail, config.AdminPassword)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := sitemapService.WriteFiles(); err != nil {
		log.Print(err.Error())
	}
	initSitemapJob(sitemapService)

	authHandler := handler.NewAuthHandler(adminService, jwtService, middlewares, config.WebHost, config.WebPort)
	listingHandler := handler.NewListingHandler(listingService, config.WebHost, config.WebPort, middlewares)
	reviewHandler := handler.NewReviewHandler(reviewService, jwtService, config.WebHost, config.WebPort)
	blogHandler := handler.NewBlogHandler(blogService, config.WebHost, config.WebPort, middlewares)
	formsHandler := handler.NewFormsHandler(formsService, config.WebHost, config.WebPort)
	sitemapHandler := handler.NewSitemapHandler(sitemapService, middlewares, config.WebHost, config.WebPort)

	router := gin.Default()
	api := router.Group("/api")
	v1 := api.Group("/v1")
	auth := v1.Group("/auth")
	auth.POST("/refresh-token", middlewares.ValidAdmin(), func(ctx *gin.Context) {
		handler.RefreshToken(ctx, jwtService)
	})

	authHandler.RegisterRoutes(auth, v1.Group("/admin"))
	listingHandler.RegisterRoutes(v1)
	reviewHandler.RegisterRoutes(v1)
	blogHandler.RegisterRoutes(v1)
	formsHandler.RegisterRoutes(v1)
	sitemapHandler.RegisterRoutes(router, v1.Group("/admin"))
	listingHandler.RegisterLegacyRoute(router)

	router.Run(config.WebHost + ":" + config.WebPort)
}
