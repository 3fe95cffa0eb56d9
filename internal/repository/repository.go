package repository

import (
	"context"
	"errors"
	"fmt"
	"receiptchain/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    error = errors.New("user not found")
	ErrReceiptNotFound error = errors.New("receipt not found")
)

type ReceiptRepository struct {
	db Storage
}

func NewReceiptRepository(db Storage) *ReceiptRepository {
	return &ReceiptRepository{
		db: db,
	}
}

func (r *ReceiptRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Receipt{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
		},
		{
			ID:           uuid.NewString(),
			Username:     "dave",
			PasswordHash: "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
		},
	}
	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

// AppendReceipt stores a new receipt record. Records are never updated afterwards.
func (r *ReceiptRepository) AppendReceipt(ctx context.Context, receipt Receipt) error {
	if err := r.db.Insert(ctx, &receipt); err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}

	return nil
}

// ListReceipts returns every stored receipt, most recently appended first.
func (r *ReceiptRepository) ListReceipts(ctx context.Context) ([]Receipt, error) {
	receipts := []Receipt{}
	if err := r.db.GetAllOrdered(ctx, "id", &receipts); err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}

	return receipts, nil
}

// GetReceipt returns the most recently appended receipt carrying receiptID.
func (r *ReceiptRepository) GetReceipt(ctx context.Context, receiptID string) (Receipt, error) {
	var receipt Receipt

	err := r.db.GetLatestBy(ctx, "receipt_id", receiptID, "id", &receipt)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Receipt{}, ErrReceiptNotFound
		}
		return Receipt{}, fmt.Errorf("get receipt by id: %w", err)
	}

	return receipt, nil
}

func (r *ReceiptRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *ReceiptRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", userID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *ReceiptRepository) UpdateUserProfile(ctx context.Context, userID, displayName, email string) error {
	err := r.db.UpdateBy(ctx, &User{}, "id", userID, map[string]any{
		"display_name": displayName,
		"email":        email,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update user profile: %w", err)
	}

	return nil
}
