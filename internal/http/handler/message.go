package handler

import (
	"errors"
	"net/http"
	"receiptchain/internal/core"
)

const (
	oopsErr       = "Oops! Something went wrong. Please try again later."
	unexpectedErr = "unexpected error occurred"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// errorStatus maps service errors to an HTTP status and the detail shown to the caller.
// Errors the caller cannot act on are hidden behind a generic message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrIncorrectPassword),
		errors.Is(err, core.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, core.ErrReceiptNotFound),
		errors.Is(err, core.ErrTransactionNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrTransferNotDecoded):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, unexpectedErr
	}
}
