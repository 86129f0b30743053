package service

import (
	"context"
	"errors"
	"time"

	"colivio/internal/repository"
	modelsAdmin "colivio/pkg/admin"
	"colivio/pkg/config"
	"colivio/pkg/customerror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Claims struct {
	AdminId uuid.UUID `json:"admin_id"`
	Version uint      `json:"version"`
	jwt.RegisteredClaims
}

type JWTServiceI interface {
	GenerateToken(a *modelsAdmin.Admin, isAccess bool) (string, error)
	ValidateToken(token string) (*modelsAdmin.Admin, error)
}

type JWTService struct {
	appConfig *config.Config
	adminRepo repository.AdminRepositoryI
}

func NewJWTService(appConfig *config.Config, adminRepo repository.AdminRepositoryI) JWTServiceI {
	return &JWTService{
		appConfig: appConfig,
		adminRepo: adminRepo,
	}
}

func (jwtService *JWTService) GenerateToken(a *modelsAdmin.Admin, isAccess bool) (string, error) {
	expireTime := time.Now().Add(1 * time.Hour)
	if !isAccess {
		expireTime = time.Now().AddDate(0, 1, 0)
	}
	claims := Claims{
		AdminId: a.UUID,
		Version: a.JWTVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expireTime),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(jwtService.appConfig.SecretKey))
	if err != nil {
		return "", customerror.NewError("JWTService.GenerateToken", jwtService.appConfig.WebHost+":"+jwtService.appConfig.WebPort, err.Error())
	}

	return tokenString, nil
}

func (jwtService *JWTService) ValidateToken(token string) (*modelsAdmin.Admin, error) {
	tokenClaims := &Claims{}
	_, err := jwt.ParseWithClaims(token, tokenClaims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtService.appConfig.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, err
		}
		return nil, customerror.ErrJwtInvalid
	}
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	a, err := jwtService.adminRepo.GetAdmin(ctx, tokenClaims.AdminId)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("JWTService.ValidateToken")
		return nil, customErr
	}
	if a.JWTVersion != tokenClaims.Version {
		return nil, customerror.ErrJwtVersionIncorrect
	}
	return a, nil
}
