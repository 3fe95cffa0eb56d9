package pub

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

const (
	streamName          = "RECEIPTCHAIN"
	streamCreateTimeout = 10 * time.Second
	duplicateWindow     = 20 * time.Minute
)

var streamSubjects = []string{streamName + ".*"}

type (
	JetStreamOpts struct {
		Endpoint        string
		PersistDuration time.Duration
		Logs            *zap.SugaredLogger
	}

	jetStreamPub struct {
		js       jetstream.JetStream
		natsConn *nats.Conn
		logs     *zap.SugaredLogger
	}
)

// NewJetStreamPub connects to NATS and makes sure the receipt stream exists.
func NewJetStreamPub(o JetStreamOpts) (Pub, error) {
	natsConn, err := nats.Connect(o.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), streamCreateTimeout)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       streamName,
		Subjects:   streamSubjects,
		MaxAge:     o.PersistDuration,
		Storage:    jetstream.FileStorage,
		Duplicates: duplicateWindow,
	})
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("create stream: %w", err)
	}

	o.Logs.Infow("jetstream publisher initialized",
		"stream", streamName,
		"subjects", streamSubjects,
		"persist_duration", o.PersistDuration)

	return &jetStreamPub{
		js:       js,
		natsConn: natsConn,
		logs:     o.Logs,
	}, nil
}

func (p *jetStreamPub) Close() {
	if p.natsConn != nil {
		p.natsConn.Close()
		p.logs.Debugw("nats connection closed")
	}
}

// Send publishes the event on RECEIPTCHAIN.<type>. The message id lets the
// stream drop a duplicate publish of the same record.
func (p *jetStreamPub) Send(ctx context.Context, payload Event) error {
	data, err := payload.Serialize()
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", streamName, payload.Type)
	msgID := fmt.Sprintf("%s:%d", payload.ReceiptID, payload.Timestamp.UnixMilli())

	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("publish event to %s: %w", subject, err)
	}

	return nil
}
