package handler

import (
	"log"
	"net/http"

	"colivio/internal/service"
	"colivio/pkg/customerror"
	modelsReview "colivio/pkg/review"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	SubmitReview(ctx *gin.Context)
}

type ReviewHandler struct {
	reviewService service.ReviewServiceI
	jwtService    service.JWTServiceI
	host          string
	port          string
}

func NewReviewHandler(reviewService service.ReviewServiceI, jwtService service.JWTServiceI, host string, port string) ReviewHandlerI {
	return &ReviewHandler{
		reviewService: reviewService,
		jwtService:    jwtService,
		host:          host,
		port:          port,
	}
}

func (reviewHandler *ReviewHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/listings/:slug/reviews", reviewHandler.SubmitReview)
}

func ratingInRange(rating *int16) bool {
	return rating == nil || (*rating >= 1 && *rating <= 5)
}

func (reviewHandler *ReviewHandler) SubmitReview(ctx *gin.Context) {
	listingSlug := ctx.Param("slug")

	var reviewFromRequest modelsReview.Review
	if err := ctx.ShouldBindBodyWithJSON(&reviewFromRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	for _, rating := range []*int16{
		reviewFromRequest.OverallRating,
		reviewFromRequest.SocialRating,
		reviewFromRequest.WorkRating,
		reviewFromRequest.SurroundingsRating,
		reviewFromRequest.FacilitiesRating,
		reviewFromRequest.PriceRating,
	} {
		if !ratingInRange(rating) {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusBadRequest,
				"body":   gin.H{},
				"error":  "ratings must be between 1 and 5",
			})
			return
		}
	}

	// Identity is optional here. A valid token attributes the review,
	// anything else falls through to an anonymous submission.
	var userId *uuid.UUID
	if authHeader := ctx.GetHeader("Authorization"); authHeader != "" {
		if a, err := reviewHandler.jwtService.ValidateToken(authHeader); err == nil {
			userId = &a.UUID
		}
	}

	detail, err := reviewHandler.reviewService.SubmitReview(listingSlug, &reviewFromRequest, userId)
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
			"error":  "review already exists",
		})
		return
	}
	if err == customerror.ErrPermissionDenied {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusForbidden,
			"body":   gin.H{},
			"error":  "permission denied",
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
		},
		"error": nil,
	})
}
