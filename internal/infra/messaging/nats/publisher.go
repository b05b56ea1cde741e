// Package nats publishes transfer timelines to NATS JetStream, one message
// per timeline entry on a per-address subject.
package nats

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/pysyun/etherscan-transfers/internal/pkg/logger"
	"github.com/pysyun/etherscan-transfers/internal/pkg/validator"
	"github.com/pysyun/etherscan-transfers/internal/timeline"
	"github.com/pysyun/etherscan-transfers/internal/transfer"
)

const (
	// StreamName is the JetStream stream holding transfer messages.
	StreamName = "TRANSFERS"

	// DefaultSubjectPrefix is the subject prefix used when none is configured.
	DefaultSubjectPrefix = "transfers"

	// StreamRetention bounds how long messages are kept.
	StreamRetention = 30 * 24 * time.Hour

	// duplicateWindow must cover re-running the tool over the same history.
	duplicateWindow = 24 * time.Hour
)

// ErrInvalidAddress is returned when the timeline address cannot form a subject.
var ErrInvalidAddress = errors.New("invalid timeline address")

// streamPublisher is the part of jetstream.JetStream used to publish.
type streamPublisher interface {
	PublishMsg(ctx context.Context, msg *nats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type publisher struct {
	nc     *nats.Conn
	js     streamPublisher
	prefix string
}

var _ timeline.Publisher = (*publisher)(nil)

// message is the JSON payload of one published entry.
type message struct {
	Address string                 `json:"address"`
	Time    int64                  `json:"time"`
	Value   transfer.TransferEvent `json:"value"`
	TxHash  string                 `json:"tx_hash,omitempty"`
}

// NewPublisher connects to natsURL and makes sure the stream exists with
// subjects "<prefix>.>".
func NewPublisher(ctx context.Context, natsURL, prefix string) (*publisher, error) {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	nc, err := nats.Connect(natsURL,
		nats.Name("etherscan-transfers"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(5),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if err := ensureStream(ctx, js, prefix); err != nil {
		nc.Close()
		return nil, err
	}

	logger.Info(ctx, "nats publisher initialized", "stream", StreamName, "subject.prefix", prefix)

	return &publisher{nc: nc, js: js, prefix: prefix}, nil
}

func ensureStream(ctx context.Context, js jetstream.JetStream, prefix string) error {
	if _, err := js.Stream(ctx, StreamName); err == nil {
		return nil
	} else if !errors.Is(err, jetstream.ErrStreamNotFound) {
		return fmt.Errorf("failed to look up stream %s: %w", StreamName, err)
	}

	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "ERC-20 transfer timeline entries",
		Subjects:    []string{prefix + ".>"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      StreamRetention,
		Duplicates:  duplicateWindow,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", StreamName, err)
	}

	logger.Info(ctx, "jetstream stream created", "stream", StreamName)
	return nil
}

// PublishTimeline publishes every entry of tl. A failed entry is logged and
// does not stop the others; all failures are returned joined.
func (p *publisher) PublishTimeline(ctx context.Context, address string, tl transfer.Timeline) error {
	if err := validator.Var(address, "required,eth_addr"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	subject := subjectFor(p.prefix, address)

	var errs []error
	for _, entry := range tl {
		data, err := encode(address, entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		msg := nats.NewMsg(subject)
		msg.Data = data
		msg.Header.Set(nats.MsgIdHdr, messageID(entry, data))

		if _, err := p.js.PublishMsg(ctx, msg); err != nil {
			logger.Error(ctx, "failed to publish timeline entry",
				"subject", subject,
				"time", entry.Time,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("publish entry at %d: %w", entry.Time, err))
		}
	}

	return errors.Join(errs...)
}

func (p *publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

func subjectFor(prefix, address string) string {
	return prefix + "." + strings.ToLower(address)
}

func encode(address string, entry transfer.TimelineEntry) ([]byte, error) {
	data, err := json.Marshal(message{
		Address: strings.ToLower(address),
		Time:    entry.Time,
		Value:   entry.Value,
		TxHash:  entry.TxHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timeline entry: %w", err)
	}

	return data, nil
}

// messageID is the JetStream deduplication id of an entry: its transaction
// hash and method selector. Entries without a hash, as read from hand-made
// transaction lists, fall back to the hex SHA-256 of the payload.
func messageID(entry transfer.TimelineEntry, payload []byte) string {
	if entry.TxHash != "" {
		return strings.ToLower(entry.TxHash) + ":" + entry.Method.Selector()
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
