package handler

import (
	"context"
	"net/http"
	"receiptchain/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ReceiptService . ReceiptService
type ReceiptService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	GetProfile(ctx context.Context, token string) (core.Profile, error)
	UpdateProfile(ctx context.Context, token string, profile core.Profile) error
	LookupTransaction(ctx context.Context, txHash string) (core.TransferRecord, error)
	CreateReceipt(ctx context.Context, form core.ReceiptForm) (core.ReceiptRecord, error)
	ListReceipts(ctx context.Context) ([]core.ReceiptRecord, error)
	GetReceipt(ctx context.Context, receiptID string) (core.ReceiptRecord, error)
	Dashboard(ctx context.Context) (core.Dashboard, error)
	PreviewReceipt(ctx context.Context, receiptID string) ([]byte, error)
	ExportReceipt(ctx context.Context, receiptID string) (core.ExportResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
