package core

import (
	"context"
	"msgboard/internal/repository"
	tokenIssuer "msgboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	CreateMessage(ctx context.Context, message *repository.Message) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
