package handler

import (
	"log"
	"net/http"
	"strconv"

	"colivio/internal/middlewares"
	"colivio/internal/service"
	modelsAdmin "colivio/pkg/admin"
	"colivio/pkg/customerror"
	modelsListing "colivio/pkg/listing"
	"colivio/pkg/slug"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type ListingHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	RegisterLegacyRoute(router *gin.Engine)
	GetListings(ctx *gin.Context)
	GetListing(ctx *gin.Context)
	LegacyRedirect(ctx *gin.Context)
	GetAllListings(ctx *gin.Context)
	InsertListing(ctx *gin.Context)
	UpdateListing(ctx *gin.Context)
	DeleteListing(ctx *gin.Context)
	GetListingImages(ctx *gin.Context)
	InsertListingImage(ctx *gin.Context)
	DeleteListingImage(ctx *gin.Context)
}

type ListingHandler struct {
	listingService service.ListingServiceI
	host           string
	port           string
	middlewares    middlewares.MiddlewaresI
}

func NewListingHandler(listingService service.ListingServiceI, host string, port string, middlewares middlewares.MiddlewaresI) ListingHandlerI {
	return &ListingHandler{
		listingService: listingService,
		host:           host,
		port:           port,
		middlewares:    middlewares,
	}
}

func (listingHandler *ListingHandler) RegisterRoutes(group *gin.RouterGroup) {
	listingGroup := group.Group("/listings")
	listingGroup.GET("/", listingHandler.GetListings)
	listingGroup.GET("/:slug", listingHandler.GetListing)

	adminGroup := group.Group("/admin/listings")
	adminGroup.Use(listingHandler.middlewares.ValidAdmin())
	adminGroup.GET("/", listingHandler.GetAllListings)
	adminGroup.POST("/", listingHandler.InsertListing)
	adminGroup.PATCH("/:id", listingHandler.UpdateListing)
	adminGroup.DELETE("/:id", listingHandler.DeleteListing)
	adminGroup.GET("/:id/images", listingHandler.GetListingImages)
	adminGroup.POST("/:id/images", listingHandler.InsertListingImage)
	adminGroup.DELETE("/:id/images/:image_id", listingHandler.DeleteListingImage)
}

func (listingHandler *ListingHandler) RegisterLegacyRoute(router *gin.Engine) {
	router.GET("/listing/:id", listingHandler.LegacyRedirect)
}

func (listingHandler *ListingHandler) GetListings(ctx *gin.Context) {
	offset := ctx.DefaultQuery("offset", "0")
	limit := ctx.DefaultQuery("limit", "20")
	limitInt, err := strconv.ParseInt(limit, 10, 64)
	if err != nil {
		limitInt = 20
	}
	offsetInt, err := strconv.ParseInt(offset, 10, 64)
	if err != nil {
		offsetInt = 0
	}
	filters := listingFilters(ctx)
	// the public browser never sees inactive or pending listings
	filters["status"] = modelsListing.StatusActive

	listings, err := listingHandler.listingService.GetListings(offsetInt, limitInt, filters)
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
		"body": gin.H{
			"listings": listings,
		},
		"error": nil,
	})
}

func listingFilters(ctx *gin.Context) map[string]any {
	filters := map[string]any{}
	for _, key := range []string{"location", "country", "price_from", "price_to", "capacity_from", "pricing_unit"} {
		value := ctx.DefaultQuery(key, "")
		if value == "" {
			filters[key] = nil
		} else {
			filters[key] = value
		}
	}
	return filters
}

func (listingHandler *ListingHandler) GetListing(ctx *gin.Context) {
	listingSlug := ctx.Param("slug")
	detail, err := listingHandler.listingService.GetListingDetail(listingSlug)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "listing not found",
		})
		return
	}
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
		"body": gin.H{
			"listing":  detail.Listing,
			"reviews":  detail.Reviews,
			"averages": detail.Averages,
			"images":   detail.Images,
		},
		"error": nil,
	})
}

func (listingHandler *ListingHandler) LegacyRedirect(ctx *gin.Context) {
	id, ok := slug.ExtractLegacyId(ctx.Request.URL.Path)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	listingSlug, err := listingHandler.listingService.ResolveLegacySlug(id)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "listing not found",
		})
		return
	}
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	ctx.Redirect(http.StatusMovedPermanently, "/colivings/"+listingSlug)
}

func (listingHandler *ListingHandler) GetAllListings(ctx *gin.Context) {
	offset := ctx.DefaultQuery("offset", "0")
	limit := ctx.DefaultQuery("limit", "50")
	limitInt, err := strconv.ParseInt(limit, 10, 64)
	if err != nil {
		limitInt = 50
	}
	offsetInt, err := strconv.ParseInt(offset, 10, 64)
	if err != nil {
		offsetInt = 0
	}
	filters := listingFilters(ctx)
	status := ctx.DefaultQuery("status", "")
	if status == "" {
		filters["status"] = nil
	} else {
		filters["status"] = status
	}

	listings, err := listingHandler.listingService.GetListings(offsetInt, limitInt, filters)
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
		"body": gin.H{
			"listings": listings,
		},
		"error": nil,
	})
}

func (listingHandler *ListingHandler) InsertListing(ctx *gin.Context) {
	adminInt, exists := ctx.Get("admin")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print("admin not found")
		return
	}
	a := adminInt.(*modelsAdmin.Admin)

	var listingFromRequest modelsListing.Listing
	if err := ctx.ShouldBindBodyWithJSON(&listingFromRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if listingFromRequest.Title == "" {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "title is required",
		})
		return
	}
	id, err := listingHandler.listingService.InsertListing(&listingFromRequest, a)
	if err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "listing already exists",
		})
		return
	}
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
		"body": gin.H{
			"id":   id,
			"slug": listingFromRequest.Slug,
		},
		"error": nil,
	})
}

func (listingHandler *ListingHandler) UpdateListing(ctx *gin.Context) {
	id := ctx.Param("id")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	var listingFromRequest modelsListing.Listing
	if err := ctx.ShouldBindBodyWithJSON(&listingFromRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	listingFromRequest.Id = idInt
	err = listingHandler.listingService.UpdateListing(&listingFromRequest)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "listing not found",
		})
		return
	}
	if err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "listing already exists",
		})
		return
	}
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

func (listingHandler *ListingHandler) DeleteListing(ctx *gin.Context) {
	id := ctx.Param("id")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	err = listingHandler.listingService.DeleteListing(idInt)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "listing not found",
		})
		return
	}
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

func (listingHandler *ListingHandler) GetListingImages(ctx *gin.Context) {
	id := ctx.Param("id")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	images, err := listingHandler.listingService.GetListingImages(idInt)
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
		"body": gin.H{
			"images": images,
		},
		"error": nil,
	})
}

func (listingHandler *ListingHandler) InsertListingImage(ctx *gin.Context) {
	id := ctx.Param("id")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "image is required",
		})
		return
	}
	err = listingHandler.listingService.InsertListingImage(file, &modelsListing.Listing{Id: idInt})
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

func (listingHandler *ListingHandler) DeleteListingImage(ctx *gin.Context) {
	id := ctx.Param("id")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	imageId := ctx.Param("image_id")
	imageIdInt, err := strconv.ParseInt(imageId, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid image id",
		})
		return
	}
	images, err := listingHandler.listingService.GetListingImages(idInt)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	for i := range images {
		if images[i].Id == imageIdInt {
			err = listingHandler.listingService.DeleteListingImage(&images[i])
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
			return
		}
	}
	ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
		"status": http.StatusNotFound,
		"body":   gin.H{},
		"error":  "image not found",
	})
}
