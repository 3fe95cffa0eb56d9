package core

import "time"

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TransferRecord is what a lookup shows the user before the receipt form is filled in.
type TransferRecord struct {
	TransactionHash string `json:"transactionHash"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Date            string `json:"date"`
	ExplorerURL     string `json:"explorerUrl"`
}

type ReceiptForm struct {
	TxHash        string
	Amount        string
	Date          string
	CustomerName  string
	CustomerEmail string
	Purpose       string
}

type ReceiptRecord struct {
	ReceiptID     string    `json:"receiptId"`
	TxHash        string    `json:"txHash"`
	Amount        string    `json:"amount"`
	Date          string    `json:"date"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Purpose       string    `json:"purpose"`
	Timestamp     time.Time `json:"timestamp"`
	ExplorerURL   string    `json:"explorerUrl"`
}

type InvoiceRow struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	Email       string `json:"email"`
	Hash        string `json:"hash"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Purpose     string `json:"purpose"`
	ReceiptID   string `json:"receiptId"`
	ExplorerURL string `json:"explorerUrl"`
}

type ActivityItem struct {
	ReceiptID    string `json:"receiptId"`
	CustomerName string `json:"customerName"`
	Amount       string `json:"amount"`
	TimeAgo      string `json:"timeAgo"`
}

type Stats struct {
	TotalReceipts   int    `json:"totalReceipts"`
	TotalValue      string `json:"totalValue"`
	MonthlyReceipts int    `json:"monthlyReceipts"`
	MonthlyValue    string `json:"monthlyValue"`
	Currency        string `json:"currency"`
}

// Dashboard is the view-model of the receipts page, rebuilt from the full store on every call.
type Dashboard struct {
	Stats          Stats          `json:"stats"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	Invoices       []InvoiceRow   `json:"invoices"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExportResult holds the rendered PDF. EmailErr is set when the PDF was produced
// but the customer notification could not be sent.
type ExportResult struct {
	Filename  string
	PDF       []byte
	EmailSent bool
	EmailErr  error
}
