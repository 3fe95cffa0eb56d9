package pub_test

import (
	"context"
	"encoding/json"
	"receiptchain/internal/pub"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Pub", func() {
	It("serializes events with the receipt fields", func() {
		ts := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
		data, err := pub.Event{
			Type:          pub.ReceiptCreated,
			ReceiptID:     "RCP-000123",
			TxHash:        "0xabc",
			Amount:        "12.5 USDC",
			CustomerEmail: "jane@example.com",
			Timestamp:     ts,
		}.Serialize()
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKeyWithValue("type", "created"))
		Expect(decoded).To(HaveKeyWithValue("receiptId", "RCP-000123"))
		Expect(decoded).To(HaveKeyWithValue("transactionHash", "0xabc"))
		Expect(decoded).To(HaveKeyWithValue("timestamp", "2024-03-15T12:00:00Z"))
	})

	It("drops events when no broker is configured", func() {
		p := pub.NewNoopPub()
		Expect(p.Send(context.Background(), pub.Event{Type: pub.ReceiptCreated})).To(Succeed())
		p.Close()
	})

	It("fails fast when nats is unreachable", func() {
		_, err := pub.NewJetStreamPub(pub.JetStreamOpts{
			Endpoint: "nats://127.0.0.1:1",
			Logs:     zap.NewNop().Sugar(),
		})
		Expect(err).To(MatchError(ContainSubstring("connect to nats")))
	})
})
