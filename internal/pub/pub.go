// Package pub publishes receipt lifecycle events to downstream consumers.
package pub

import (
	"context"
	"encoding/json"
	"time"
)

const ReceiptCreated = "created"

// Event announces a change to the receipt store.
type Event struct {
	Type          string    `json:"type"`
	ReceiptID     string    `json:"receiptId"`
	TxHash        string    `json:"transactionHash"`
	Amount        string    `json:"amount"`
	CustomerEmail string    `json:"customerEmail"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e Event) Serialize() ([]byte, error) {
	return json.Marshal(e)
}

type Pub interface {
	Send(context.Context, Event) error
	Close()
}

type noopPub struct{}

// NewNoopPub returns a publisher that drops every event. It is used when no broker is configured.
func NewNoopPub() Pub {
	return noopPub{}
}

func (noopPub) Send(context.Context, Event) error { return nil }

func (noopPub) Close() {}
