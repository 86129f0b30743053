package handler

import (
	"log"
	"net/http"
	"strconv"

	"colivio/internal/middlewares"
	"colivio/internal/service"
	modelsBlog "colivio/pkg/blog"
	"colivio/pkg/customerror"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type BlogHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	GetPosts(ctx *gin.Context)
	GetPost(ctx *gin.Context)
	GetAllPosts(ctx *gin.Context)
	InsertPost(ctx *gin.Context)
	UpdatePost(ctx *gin.Context)
	DeletePost(ctx *gin.Context)
}

type BlogHandler struct {
	blogService service.BlogServiceI
	host        string
	port        string
	middlewares middlewares.MiddlewaresI
}

func NewBlogHandler(blogService service.BlogServiceI, host string, port string, middlewares middlewares.MiddlewaresI) BlogHandlerI {
	return &BlogHandler{
		blogService: blogService,
		host:        host,
		port:        port,
		middlewares: middlewares,
	}
}

func (blogHandler *BlogHandler) RegisterRoutes(group *gin.RouterGroup) {
	blogGroup := group.Group("/blog")
	blogGroup.GET("/", blogHandler.GetPosts)
	blogGroup.GET("/:slug", blogHandler.GetPost)

	adminGroup := group.Group("/admin/blog")
	adminGroup.Use(blogHandler.middlewares.ValidAdmin())
	adminGroup.GET("/", blogHandler.GetAllPosts)
	adminGroup.POST("/", blogHandler.InsertPost)
	adminGroup.PATCH("/:id", blogHandler.UpdatePost)
	adminGroup.DELETE("/:id", blogHandler.DeletePost)
}

func (blogHandler *BlogHandler) GetPosts(ctx *gin.Context) {
	blogHandler.getPosts(ctx, true)
}

func (blogHandler *BlogHandler) GetAllPosts(ctx *gin.Context) {
	blogHandler.getPosts(ctx, false)
}

func (blogHandler *BlogHandler) getPosts(ctx *gin.Context, publishedOnly bool) {
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
	posts, err := blogHandler.blogService.GetPosts(offsetInt, limitInt, publishedOnly)
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
			"posts": posts,
		},
		"error": nil,
	})
}

func (blogHandler *BlogHandler) GetPost(ctx *gin.Context) {
	postSlug := ctx.Param("slug")
	post, err := blogHandler.blogService.GetPost(postSlug, true)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "post not found",
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
			"post": post,
		},
		"error": nil,
	})
}

func (blogHandler *BlogHandler) InsertPost(ctx *gin.Context) {
	var postFromRequest modelsBlog.BlogPost
	if err := ctx.ShouldBindBodyWithJSON(&postFromRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if postFromRequest.Title == "" {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "title is required",
		})
		return
	}
	id, err := blogHandler.blogService.InsertPost(&postFromRequest)
	if err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "post already exists",
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
			"slug": postFromRequest.Slug,
		},
		"error": nil,
	})
}

func (blogHandler *BlogHandler) UpdatePost(ctx *gin.Context) {
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
	var postFromRequest modelsBlog.BlogPost
	if err := ctx.ShouldBindBodyWithJSON(&postFromRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	postFromRequest.Id = idInt
	err = blogHandler.blogService.UpdatePost(&postFromRequest)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "post not found",
		})
		return
	}
	if err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "post already exists",
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

func (blogHandler *BlogHandler) DeletePost(ctx *gin.Context) {
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
	err = blogHandler.blogService.DeletePost(idInt)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "post not found",
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
