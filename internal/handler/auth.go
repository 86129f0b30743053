package handler

import (
	"log"
	"net/http"

	"colivio/internal/middlewares"
	"colivio/internal/service"
	modelsAdmin "colivio/pkg/admin"
	"colivio/pkg/customerror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AuthHandlerI interface {
	RegisterRoutes(authGroup *gin.RouterGroup, adminGroup *gin.RouterGroup)
	Login(ctx *gin.Context)
	AcceptInvite(ctx *gin.Context)
	CreateInvite(ctx *gin.Context)
	GetInvites(ctx *gin.Context)
}

type AuthHandler struct {
	adminService service.AdminServiceI
	jwtService   service.JWTServiceI
	middlewares  middlewares.MiddlewaresI
	host         string
	port         string
}

func NewAuthHandler(adminService service.AdminServiceI, jwtService service.JWTServiceI, middlewares middlewares.MiddlewaresI, host string, port string) AuthHandlerI {
	return &AuthHandler{
		adminService: adminService,
		jwtService:   jwtService,
		middlewares:  middlewares,
		host:         host,
		port:         port,
	}
}

func (authHandler *AuthHandler) RegisterRoutes(authGroup *gin.RouterGroup, adminGroup *gin.RouterGroup) {
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/accept-invite", authHandler.AcceptInvite)

	inviteGroup := adminGroup.Group("/invites")
	inviteGroup.Use(authHandler.middlewares.ValidAdmin())
	inviteGroup.GET("/", authHandler.GetInvites)
	inviteGroup.POST("/", authHandler.middlewares.SuperUserOnly(), authHandler.CreateInvite)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (authHandler *AuthHandler) Login(ctx *gin.Context) {
	var request loginRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	a, err := authHandler.adminService.Login(request.Email, request.Password)
	if err == customerror.ErrWrongCredentials {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusUnauthorized,
			"body":   gin.H{},
			"error":  "wrong credentials",
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
	authHandler.respondWithTokens(ctx, a)
}

type acceptInviteRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (authHandler *AuthHandler) AcceptInvite(ctx *gin.Context) {
	var request acceptInviteRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	token, err := uuid.Parse(request.Token)
	if err != nil || request.Password == "" {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	a, err := authHandler.adminService.AcceptInvite(token, request.Password)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "invite not found",
		})
		return
	}
	if err == customerror.ErrInviteAlreadyAccepted || err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "invite already accepted",
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
	authHandler.respondWithTokens(ctx, a)
}

func (authHandler *AuthHandler) respondWithTokens(ctx *gin.Context, a *modelsAdmin.Admin) {
	accessToken, err := authHandler.jwtService.GenerateToken(a, true)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	refreshToken, err := authHandler.jwtService.GenerateToken(a, false)
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
			"admin":         a,
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	})
}

type createInviteRequest struct {
	Email string `json:"email"`
}

func (authHandler *AuthHandler) CreateInvite(ctx *gin.Context) {
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

	var request createInviteRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil || request.Email == "" {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "email is required",
		})
		return
	}
	invite, err := authHandler.adminService.CreateInvite(request.Email, a)
	if err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "admin already exists",
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
			"invite": invite,
		},
		"error": nil,
	})
}

func (authHandler *AuthHandler) GetInvites(ctx *gin.Context) {
	invites, err := authHandler.adminService.GetInvites()
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
			"invites": invites,
		},
		"error": nil,
	})
}
