package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	sendPath              = "/api/v1.0/email/send"
	defaultRequestTimeout = 15 * time.Second
	maxErrorBodyBytes     = 1024
)

var ErrSendFailed = errors.New("email relay rejected the message")

type (
	// EmailJSOpts holds the identifiers issued by the EmailJS dashboard.
	EmailJSOpts struct {
		APIURL     string
		ServiceID  string
		TemplateID string
		PublicKey  string
		PrivateKey string // optional, required only when strict mode is enabled on the account
		HTTPClient *http.Client
	}

	EmailJSClient struct {
		httpClient *http.Client
		endpoint   string
		serviceID  string
		templateID string
		publicKey  string
		privateKey string
	}

	// ReceiptNotification carries the variables bound by the receipt email template.
	ReceiptNotification struct {
		Email           string
		ToName          string
		ReceiptID       string
		Amount          string
		Date            string
		TransactionHash string
		Purpose         string
		GeneratedDate   string
	}

	sendRequest struct {
		ServiceID      string            `json:"service_id"`
		TemplateID     string            `json:"template_id"`
		UserID         string            `json:"user_id"`
		AccessToken    string            `json:"accessToken,omitempty"`
		TemplateParams map[string]string `json:"template_params"`
	}
)

func NewEmailJSClient(o EmailJSOpts) *EmailJSClient {
	httpClient := o.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}

	return &EmailJSClient{
		httpClient: httpClient,
		endpoint:   strings.TrimSuffix(o.APIURL, "/") + sendPath,
		serviceID:  o.ServiceID,
		templateID: o.TemplateID,
		publicKey:  o.PublicKey,
		privateKey: o.PrivateKey,
	}
}

func (n ReceiptNotification) templateParams() map[string]string {
	return map[string]string{
		"email":            n.Email,
		"to_name":          n.ToName,
		"receipt_id":       n.ReceiptID,
		"amount":           n.Amount,
		"date":             n.Date,
		"transaction_hash": n.TransactionHash,
		"purpose":          n.Purpose,
		"generated_date":   n.GeneratedDate,
	}
}

// Send dispatches the notification through the EmailJS REST API.
func (c *EmailJSClient) Send(ctx context.Context, n ReceiptNotification) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: n.templateParams(),
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}
