package handler

import (
	"log"
	"net/http"

	"colivio/internal/service"
	modelsAdmin "colivio/pkg/admin"

	"github.com/gin-gonic/gin"
)

func RefreshToken(ctx *gin.Context, jwtService service.JWTServiceI) {
	a, exists := ctx.Get("admin")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid admin",
		})
		return
	}
	accessToken, err := jwtService.GenerateToken(a.(*modelsAdmin.Admin), true)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	refreshToken, err := jwtService.GenerateToken(a.(*modelsAdmin.Admin), false)
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
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	})
}
