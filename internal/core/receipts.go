package core

import (
	"context"
	"errors"
	"fmt"
	"receiptchain/internal/email"
	"receiptchain/internal/ethereum"
	"receiptchain/internal/export"
	"receiptchain/internal/pub"
	"receiptchain/internal/repository"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/shopspring/decimal"
)

const (
	recentActivityLimit = 3
	invoiceStatusPaid   = "Paid"
)

var (
	receiptsCreated = metrics.NewCounter("receiptchain_receipts_created_total")
	receiptExports  = metrics.NewCounter("receiptchain_receipt_exports_total")
	emailFailures   = metrics.NewCounter("receiptchain_email_failures_total")
)

// LookupTransaction resolves a transaction hash into the amount and currency that a receipt will carry.
func (c *ReceiptChain) LookupTransaction(ctx context.Context, txHash string) (TransferRecord, error) {
	transfer, err := c.chain.LookupTransfer(ctx, txHash)
	if err != nil {
		return TransferRecord{}, fmt.Errorf("lookup transfer: %w", err)
	}

	c.logs.Infow("transaction resolved",
		"txHash", txHash,
		"amount", transfer.Amount.String(),
		"currency", transfer.Currency)

	return TransferRecord{
		TransactionHash: txHash,
		Amount:          transfer.FormatAmount(),
		Currency:        transfer.Currency,
		Date:            formatDate(TimeNow()),
		ExplorerURL:     c.explorerURL(txHash),
	}, nil
}

// CreateReceipt appends a new record built from the submitted form and announces it.
func (c *ReceiptChain) CreateReceipt(ctx context.Context, form ReceiptForm) (ReceiptRecord, error) {
	now := TimeNow().UTC().Truncate(time.Millisecond)

	receipt := repository.Receipt{
		ReceiptID:     newReceiptID(now),
		TxHash:        form.TxHash,
		Amount:        form.Amount,
		Date:          form.Date,
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		Purpose:       form.Purpose,
		Timestamp:     now,
	}

	if err := c.repo.AppendReceipt(ctx, receipt); err != nil {
		return ReceiptRecord{}, fmt.Errorf("append receipt: %w", err)
	}
	receiptsCreated.Inc()

	c.logs.Infow("receipt created", "receiptId", receipt.ReceiptID, "txHash", receipt.TxHash)

	err := c.publisher.Send(ctx, pub.Event{
		Type:          pub.ReceiptCreated,
		ReceiptID:     receipt.ReceiptID,
		TxHash:        receipt.TxHash,
		Amount:        receipt.Amount,
		CustomerEmail: receipt.CustomerEmail,
		Timestamp:     receipt.Timestamp,
	})
	if err != nil {
		c.logs.Errorw("failed to publish receipt event", "error", err, "receiptId", receipt.ReceiptID)
	}

	return c.toRecord(receipt), nil
}

func (c *ReceiptChain) ListReceipts(ctx context.Context) ([]ReceiptRecord, error) {
	receipts, err := c.repo.ListReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}

	records := make([]ReceiptRecord, 0, len(receipts))
	for _, r := range receipts {
		records = append(records, c.toRecord(r))
	}

	return records, nil
}

func (c *ReceiptChain) GetReceipt(ctx context.Context, receiptID string) (ReceiptRecord, error) {
	receipt, err := c.getReceipt(ctx, receiptID)
	if err != nil {
		return ReceiptRecord{}, err
	}

	return c.toRecord(receipt), nil
}

// Dashboard recomputes statistics, recent activity and invoice rows from every stored receipt.
func (c *ReceiptChain) Dashboard(ctx context.Context) (Dashboard, error) {
	records, err := c.ListReceipts(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	now := TimeNow()

	dashboard := Dashboard{
		Stats:          computeStats(records, now),
		RecentActivity: make([]ActivityItem, 0, recentActivityLimit),
		Invoices:       make([]InvoiceRow, 0, len(records)),
	}

	for i, r := range records {
		if i < recentActivityLimit {
			dashboard.RecentActivity = append(dashboard.RecentActivity, ActivityItem{
				ReceiptID:    r.ReceiptID,
				CustomerName: r.CustomerName,
				Amount:       r.Amount,
				TimeAgo:      formatTimeAgo(now, r.Timestamp),
			})
		}
		dashboard.Invoices = append(dashboard.Invoices, toInvoiceRow(r))
	}

	return dashboard, nil
}

// PreviewReceipt renders the printable HTML version of a stored receipt.
func (c *ReceiptChain) PreviewReceipt(ctx context.Context, receiptID string) ([]byte, error) {
	receipt, err := c.getReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	html, err := c.renderer.RenderHTML(c.document(receipt))
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	return html, nil
}

// ExportReceipt renders the receipt as a PDF and emails the customer. The PDF is
// returned even when the email fails; the failure is reported in the result.
func (c *ReceiptChain) ExportReceipt(ctx context.Context, receiptID string) (ExportResult, error) {
	receipt, err := c.getReceipt(ctx, receiptID)
	if err != nil {
		return ExportResult{}, err
	}

	doc := c.document(receipt)

	pdf, err := c.renderer.RenderPDF(doc)
	if err != nil {
		return ExportResult{}, fmt.Errorf("render pdf: %w", err)
	}
	receiptExports.Inc()

	result := ExportResult{
		Filename: doc.Filename(),
		PDF:      pdf,
	}

	err = c.mailer.Send(ctx, email.ReceiptNotification{
		Email:           receipt.CustomerEmail,
		ToName:          receipt.CustomerName,
		ReceiptID:       receipt.ReceiptID,
		Amount:          receipt.Amount,
		Date:            receipt.Date,
		TransactionHash: receipt.TxHash,
		Purpose:         receipt.Purpose,
		GeneratedDate:   doc.GeneratedDate,
	})
	if err != nil {
		emailFailures.Inc()
		c.logs.Warnw("receipt email not sent", "error", err, "receiptId", receipt.ReceiptID)
		result.EmailErr = err
		return result, nil
	}

	result.EmailSent = true
	c.logs.Infow("receipt exported and emailed", "receiptId", receipt.ReceiptID)

	return result, nil
}

func (c *ReceiptChain) getReceipt(ctx context.Context, receiptID string) (repository.Receipt, error) {
	receipt, err := c.repo.GetReceipt(ctx, receiptID)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			return repository.Receipt{}, ErrReceiptNotFound
		}
		return repository.Receipt{}, fmt.Errorf("get receipt: %w", err)
	}

	return receipt, nil
}

func (c *ReceiptChain) document(r repository.Receipt) export.Document {
	return export.Document{
		ReceiptID:     r.ReceiptID,
		Date:          r.Date,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Purpose:       r.Purpose,
		Amount:        r.Amount,
		TxHash:        r.TxHash,
		ExplorerURL:   c.explorerURL(r.TxHash),
		GeneratedDate: formatDate(TimeNow()),
	}
}

func (c *ReceiptChain) toRecord(r repository.Receipt) ReceiptRecord {
	return ReceiptRecord{
		ReceiptID:     r.ReceiptID,
		TxHash:        r.TxHash,
		Amount:        r.Amount,
		Date:          r.Date,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Purpose:       r.Purpose,
		Timestamp:     r.Timestamp,
		ExplorerURL:   c.explorerURL(r.TxHash),
	}
}

func (c *ReceiptChain) explorerURL(txHash string) string {
	return c.explorerTxURL + txHash
}

func toInvoiceRow(r ReceiptRecord) InvoiceRow {
	return InvoiceRow{
		ID:          invoiceID(r.ReceiptID),
		Customer:    r.CustomerName,
		Email:       r.CustomerEmail,
		Hash:        r.TxHash,
		Amount:      r.Amount,
		Date:        r.Date,
		Status:      invoiceStatusPaid,
		Purpose:     r.Purpose,
		ReceiptID:   r.ReceiptID,
		ExplorerURL: r.ExplorerURL,
	}
}

// computeStats counts every record and the ones created within the last calendar month.
func computeStats(records []ReceiptRecord, now time.Time) Stats {
	monthAgo := now.AddDate(0, -1, 0)

	total := decimal.Zero
	monthly := decimal.Zero
	monthlyCount := 0

	for _, r := range records {
		amount := parseAmount(r.Amount)
		total = total.Add(amount)

		if r.Timestamp.After(monthAgo) {
			monthlyCount++
			monthly = monthly.Add(amount)
		}
	}

	return Stats{
		TotalReceipts:   len(records),
		TotalValue:      total.StringFixed(2),
		MonthlyReceipts: monthlyCount,
		MonthlyValue:    monthly.StringFixed(2),
		Currency:        ethereum.NativeSymbol,
	}
}
