package middlewares

import (
	"errors"
	"log"
	"net/http"

	"colivio/internal/service"
	"colivio/pkg/admin"
	"colivio/pkg/customerror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
)

type MiddlewaresI interface {
	ValidAdmin() gin.HandlerFunc
	SuperUserOnly() gin.HandlerFunc
}

type Middlewares struct {
	jwtService service.JWTServiceI
	host       string
	port       string
}

func NewMiddlewares(jwtService service.JWTServiceI, host string, port string) MiddlewaresI {
	return &Middlewares{
		jwtService: jwtService,
		host:       host,
		port:       port,
	}
}

func (middlewares *Middlewares) ValidAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		a, err := middlewares.jwtService.ValidateToken(authHeader)
		if errors.Is(err, jwt.ErrTokenExpired) {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusUnauthorized,
				"body":   gin.H{},
				"error":  "token expired",
			})
			return
		}
		if err == customerror.ErrJwtInvalid || err == customerror.ErrJwtVersionIncorrect || err == pgx.ErrNoRows {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusUnauthorized,
				"body":   gin.H{},
				"error":  "token invalid",
			})
			return
		}
		if err != nil {
			customErr := err.(customerror.CustomError)
			customErr.AppendModule("Middlewares")
			log.Print(customErr.Error())
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusInternalServerError,
				"body":   gin.H{},
				"error":  "Internal Server Error",
			})
			return
		}
		ctx.Set("admin", a)
		ctx.Next()
	}
}

func (middlewares *Middlewares) SuperUserOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authAdmin, exists := ctx.Get("admin")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusInternalServerError,
				"body":   gin.H{},
				"error":  "Internal Server Error",
			})
			return
		}
		a := authAdmin.(*admin.Admin)
		if !a.IsSuperUser {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusForbidden,
				"body":   gin.H{},
				"error":  "Forbidden",
			})
			return
		}
		ctx.Next()
	}
}
