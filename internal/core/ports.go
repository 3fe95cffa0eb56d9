package core

import (
	"context"
	"receiptchain/internal/email"
	"receiptchain/internal/ethereum"
	"receiptchain/internal/export"
	"receiptchain/internal/pub"
	"receiptchain/internal/repository"
	tokenIssuer "receiptchain/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	UpdateUserProfile(ctx context.Context, userID, displayName, email string) error
	AppendReceipt(ctx context.Context, receipt repository.Receipt) error
	ListReceipts(ctx context.Context) ([]repository.Receipt, error)
	GetReceipt(ctx context.Context, receiptID string) (repository.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	LookupTransfer(ctx context.Context, hash string) (ethereum.Transfer, error)
}

//counterfeiter:generate -o fake -fake-name Renderer . Renderer
type Renderer interface {
	RenderPDF(doc export.Document) ([]byte, error)
	RenderHTML(doc export.Document) ([]byte, error)
}

//counterfeiter:generate -o fake -fake-name Mailer . Mailer
type Mailer interface {
	Send(ctx context.Context, n email.ReceiptNotification) error
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	Send(ctx context.Context, e pub.Event) error
}
