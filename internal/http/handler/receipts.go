package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"receiptchain/internal/core"
	"receiptchain/internal/http/handler/middleware"
	"receiptchain/internal/http/payload"
	"strconv"

	"go.uber.org/zap"
)

const authTokenHeader = "AUTH_TOKEN"

const (
	emailStatusHeader = "X-Email-Status"
	emailStatusSent   = "sent"
	emailStatusFailed = "failed"
)

var (
	Authenticate      = "POST /receiptchain/authenticate"
	GetProfile        = "GET /receiptchain/profile"
	UpdateProfile     = "PUT /receiptchain/profile"
	LookupTransaction = "GET /receiptchain/transactions/{txHash}"
	CreateReceipt     = "POST /receiptchain/receipts"
	ListReceipts      = "GET /receiptchain/receipts"
	GetReceipt        = "GET /receiptchain/receipts/{receiptId}"
	PreviewReceipt    = "GET /receiptchain/receipts/{receiptId}/preview"
	ExportReceipt     = "POST /receiptchain/receipts/{receiptId}/export"
	GetDashboard      = "GET /receiptchain/dashboard"
	Metrics           = "GET /metrics"
)

type ReceiptHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	receipts         ReceiptService
}

func NewReceiptHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, receiptService ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		logs:             logger,
		requestValidator: requestValidator,
		receipts:         receiptService,
	}
}

func (h *ReceiptHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authReq payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &authReq); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.receipts.Authenticate(r.Context(), authReq.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken, ok := h.authToken(w, r, GetProfile, requestId)
	if !ok {
		return
	}

	profile, err := h.receipts.GetProfile(r.Context(), authToken)
	if err != nil {
		h.fail(w, "Could not load profile", err, GetProfile, requestId)
		return
	}

	h.respond(w, Response{Data: profile}, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken, ok := h.authToken(w, r, UpdateProfile, requestId)
	if !ok {
		return
	}

	var profileReq payload.ProfileRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &profileReq); err != nil {
		h.respond(w, Response{
			Message: "Could not update profile",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateProfile,
			"request_id", requestId)
		return
	}

	if err := h.receipts.UpdateProfile(r.Context(), authToken, profileReq.ToProfile()); err != nil {
		h.fail(w, "Could not update profile", err, UpdateProfile, requestId)
		return
	}

	h.respond(w, Response{Message: "Profile updated"}, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandleLookupTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	txRequest := payload.TransactionRequest{
		TxHash: r.PathValue("txHash"),
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Invalid transaction hash",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate transaction hash",
			"error", err,
			"handler", LookupTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction lookup received",
		"txHash", txRequest.TxHash,
		"handler", LookupTransaction,
		"request_id", requestId)

	transfer, err := h.receipts.LookupTransaction(r.Context(), txRequest.TxHash)
	if err != nil {
		code, detail := errorStatus(err)
		if code == http.StatusInternalServerError {
			// the node could not be reached or answered with garbage
			code, detail = http.StatusBadGateway, "chain lookup failed"
		}
		h.respond(w, Response{
			Message: "Invalid transaction hash or network error. Please try again.",
			Error:   detail,
		}, code,
			requestId)
		h.logs.Errorw("failed to look up transaction",
			"error", err,
			"handler", LookupTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: transfer}, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandleCreateReceipt(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var receiptReq payload.ReceiptRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &receiptReq); err != nil {
		h.respond(w, Response{
			Message: "Could not create receipt",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateReceipt,
			"request_id", requestId)
		return
	}

	record, err := h.receipts.CreateReceipt(r.Context(), receiptReq.ToForm())
	if err != nil {
		h.fail(w, "Could not create receipt", err, CreateReceipt, requestId)
		return
	}

	h.logs.Infow("receipt created",
		"receiptId", record.ReceiptID,
		"handler", CreateReceipt,
		"request_id", requestId)

	h.respond(w, Response{Data: record}, http.StatusCreated, requestId)
}

func (h *ReceiptHandler) HandleListReceipts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	records, err := h.receipts.ListReceipts(r.Context())
	if err != nil {
		h.fail(w, "Could not list receipts", err, ListReceipts, requestId)
		return
	}

	resp := map[string][]core.ReceiptRecord{
		"receipts": records,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandleGetReceipt(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	record, err := h.receipts.GetReceipt(r.Context(), r.PathValue("receiptId"))
	if err != nil {
		h.fail(w, "Could not get receipt", err, GetReceipt, requestId)
		return
	}

	h.respond(w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	dashboard, err := h.receipts.Dashboard(r.Context())
	if err != nil {
		h.fail(w, "Could not load dashboard", err, GetDashboard, requestId)
		return
	}

	h.respond(w, Response{Data: dashboard}, http.StatusOK, requestId)
}

func (h *ReceiptHandler) HandlePreviewReceipt(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	html, err := h.receipts.PreviewReceipt(r.Context(), r.PathValue("receiptId"))
	if err != nil {
		h.fail(w, "Could not preview receipt", err, PreviewReceipt, requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(html); err != nil {
		h.logs.Errorw("failed to write preview",
			"error", err,
			"handler", PreviewReceipt,
			"request_id", requestId)
	}
}

func (h *ReceiptHandler) HandleExportReceipt(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	result, err := h.receipts.ExportReceipt(r.Context(), r.PathValue("receiptId"))
	if err != nil {
		h.fail(w, "Failed to generate PDF.", err, ExportReceipt, requestId)
		return
	}

	emailStatus := emailStatusSent
	if !result.EmailSent {
		emailStatus = emailStatusFailed
		h.logs.Warnw("PDF exported but email sending failed",
			"error", result.EmailErr,
			"handler", ExportReceipt,
			"request_id", requestId)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Header().Set(emailStatusHeader, emailStatus)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(result.PDF); err != nil {
		h.logs.Errorw("failed to write pdf",
			"error", err,
			"handler", ExportReceipt,
			"request_id", requestId)
	}
}

func (h *ReceiptHandler) authToken(w http.ResponseWriter, r *http.Request, handler, requestId string) (string, bool) {
	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handler, "request_id", requestId)
		return "", false
	}
	return authToken, true
}

func (h *ReceiptHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code, detail := errorStatus(err)
	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, code,
		requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *ReceiptHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}
