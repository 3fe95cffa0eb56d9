package core

import (
	"context"
	"errors"
	"fmt"
	"receiptchain/internal/ethereum"
	"receiptchain/internal/repository"
	tokenIssuer "receiptchain/pkg/jwt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword   error = errors.New("incorrect password")
	ErrUserNotFound        error = errors.New("user not found")
	ErrInvalidToken        error = errors.New("invalid auth token")
	ErrReceiptNotFound     error = repository.ErrReceiptNotFound
	ErrTransactionNotFound error = ethereum.ErrTransactionNotFound
	ErrTransferNotDecoded  error = ethereum.ErrTransferNotDecoded
)

const (
	guestName    = "Guest User"
	noEmailLabel = "No email set"
)

// TimeNow is the clock used for receipt ids, dates and statistics.
var TimeNow = time.Now

type ReceiptChainOpts struct {
	Logs          *zap.SugaredLogger
	Repo          Repository
	JWTIssuer     JWTIssuer
	Chain         ChainService
	Renderer      Renderer
	Mailer        Mailer
	Publisher     Publisher
	ExplorerTxURL string
}

// ReceiptChain turns on-chain transfers into stored, printable and mailable receipts.
type ReceiptChain struct {
	logs          *zap.SugaredLogger
	repo          Repository
	jwtIssuer     JWTIssuer
	chain         ChainService
	renderer      Renderer
	mailer        Mailer
	publisher     Publisher
	explorerTxURL string
}

func NewReceiptChain(o ReceiptChainOpts) *ReceiptChain {
	return &ReceiptChain{
		logs:          o.Logs,
		repo:          o.Repo,
		jwtIssuer:     o.JWTIssuer,
		chain:         o.Chain,
		renderer:      o.Renderer,
		mailer:        o.Mailer,
		publisher:     o.Publisher,
		explorerTxURL: o.ExplorerTxURL,
	}
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (c *ReceiptChain) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := c.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// GetProfile returns the display profile of the token holder, with placeholders for unset fields.
func (c *ReceiptChain) GetProfile(ctx context.Context, token string) (Profile, error) {
	userID, err := c.subject(token)
	if err != nil {
		return Profile{}, err
	}

	user, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, fmt.Errorf("get user by id: %w", err)
	}

	profile := Profile{
		Name:  user.DisplayName,
		Email: user.Email,
	}
	if profile.Name == "" {
		profile.Name = guestName
	}
	if profile.Email == "" {
		profile.Email = noEmailLabel
	}

	return profile, nil
}

func (c *ReceiptChain) UpdateProfile(ctx context.Context, token string, profile Profile) error {
	userID, err := c.subject(token)
	if err != nil {
		return err
	}

	err = c.repo.UpdateUserProfile(ctx, userID, profile.Name, profile.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update user profile: %w", err)
	}

	c.logs.Infow("user profile updated", "userId", userID)
	return nil
}

func (c *ReceiptChain) subject(token string) (string, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w: %w", ErrInvalidToken, err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return userID, nil
}
