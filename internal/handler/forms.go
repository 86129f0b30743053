package handler

import (
	"log"
	"net/http"
	"strings"

	"colivio/internal/service"
	"colivio/pkg/customerror"
	modelsForms "colivio/pkg/forms"

	"github.com/gin-gonic/gin"
)

type FormsHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	SubmitPartnerInquiry(ctx *gin.Context)
	JoinCommunity(ctx *gin.Context)
}

type FormsHandler struct {
	formsService service.FormsServiceI
	host         string
	port         string
}

func NewFormsHandler(formsService service.FormsServiceI, host string, port string) FormsHandlerI {
	return &FormsHandler{
		formsService: formsService,
		host:         host,
		port:         port,
	}
}

func (formsHandler *FormsHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/partner-inquiries", formsHandler.SubmitPartnerInquiry)
	group.POST("/community-members", formsHandler.JoinCommunity)
}

func (formsHandler *FormsHandler) SubmitPartnerInquiry(ctx *gin.Context) {
	var inquiry modelsForms.PartnerInquiry
	if err := ctx.ShouldBindBodyWithJSON(&inquiry); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if inquiry.SpaceName == "" || !strings.Contains(inquiry.Email, "@") {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "space name and email are required",
		})
		return
	}
	id, err := formsHandler.formsService.SubmitPartnerInquiry(&inquiry)
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
			"id": id,
		},
		"error": nil,
	})
}

func (formsHandler *FormsHandler) JoinCommunity(ctx *gin.Context) {
	var member modelsForms.CommunityMember
	if err := ctx.ShouldBindBodyWithJSON(&member); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if !strings.Contains(member.Email, "@") {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "email is required",
		})
		return
	}
	id, err := formsHandler.formsService.JoinCommunity(&member)
	if err == customerror.ErrAlreadyExists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "already exists",
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
			"id": id,
		},
		"error": nil,
	})
}
