// Package timeline builds the transfer timeline of an address: it pages
// through a TransactionSource, runs the transfer pipeline over the batch,
// reports what was skipped and optionally publishes the result.
package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/pysyun/etherscan-transfers/internal/pkg/logger"
	"github.com/pysyun/etherscan-transfers/internal/pkg/validator"
	"github.com/pysyun/etherscan-transfers/internal/transfer"
)

const instrumentationName = "github.com/pysyun/etherscan-transfers/internal/timeline"

var (
	// ErrInvalidQuery is returned by Build when the query fails validation.
	ErrInvalidQuery = errors.New("invalid timeline query")

	// ErrPublish is returned by Build when the timeline could not be delivered.
	ErrPublish = errors.New("failed to publish timeline")
)

type Service interface {
	// Build fetches the history selected by q and returns its transfer
	// timeline. Fetch failures are logged and end pagination early; they are
	// not returned. The error is non-nil only for an invalid query or a
	// failed publish.
	Build(ctx context.Context, q Query) (transfer.Timeline, error)

	// Process runs the transfer pipeline over an already fetched batch and
	// reports every skipped record.
	Process(ctx context.Context, records []transfer.TransactionRecord) transfer.Timeline
}

type service struct {
	source    TransactionSource
	publisher Publisher
	maxPages  int

	tracer  trace.Tracer
	metrics metrics
}

var _ Service = (*service)(nil)

func (s *service) Build(ctx context.Context, q Query) (transfer.Timeline, error) {
	if err := validator.Validate(q); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	runID := uuid.NewString()
	ctx = logger.Derive(ctx, "run.id", runID, "address", q.Address)

	ctx, span := s.tracer.Start(ctx, "timeline.Build", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("address", q.Address),
	))
	defer span.End()

	records := s.fetch(ctx, q)
	tl := s.Process(ctx, records)
	span.SetAttributes(attribute.Int("timeline.entries", len(tl)))

	if s.publisher == nil || len(tl) == 0 {
		return tl, nil
	}

	if err := s.publisher.PublishTimeline(ctx, q.Address, tl); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		return tl, fmt.Errorf("%w: %w", ErrPublish, err)
	}

	logger.Debug(ctx, "timeline published", "timeline.entries", len(tl))
	return tl, nil
}

// fetch walks pages starting at q.Page until a short page, the page limit or
// the first failure.
func (s *service) fetch(ctx context.Context, q Query) []transfer.TransactionRecord {
	var records []transfer.TransactionRecord

	limit := s.maxPages
	if q.Pages > 0 {
		limit = q.Pages
	}

	page := q
	for range limit {
		batch, err := s.source.Transactions(ctx, page)
		if err != nil {
			s.metrics.fetchFailures.Add(ctx, 1)
			logger.Error(ctx, "failed to fetch transactions",
				"page", page.Page,
				"error", err,
			)
			break
		}

		records = append(records, batch...)
		if len(batch) < page.Offset {
			break
		}

		page.Page++
	}

	s.metrics.fetched.Add(ctx, int64(len(records)))
	return records
}

func (s *service) Process(ctx context.Context, records []transfer.TransactionRecord) transfer.Timeline {
	retained := transfer.Filter(records)
	result := transfer.Assemble(retained)

	for _, skip := range result.Skipped {
		s.metrics.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(skip.Reason))))
		logger.Warn(ctx, "transaction skipped",
			"reason", skip.Reason,
			"tx.hash", skip.Record.Hash,
			"tx.block", skip.Record.BlockNumber,
			"error", skip.Err,
		)
	}

	s.metrics.retained.Add(ctx, int64(len(retained)))
	s.metrics.decoded.Add(ctx, int64(len(result.Timeline)))

	logger.Info(ctx, "timeline built",
		"records.total", len(records),
		"records.retained", len(retained),
		"events.decoded", len(result.Timeline),
		"records.skipped", len(result.Skipped),
	)

	return result.Timeline
}

type config struct {
	publisher      Publisher
	maxPages       int
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

type Option func(*config)

// New returns a Service reading from source. By default a single page is
// fetched, nothing is published and the global OpenTelemetry providers are
// used.
func New(source TransactionSource, opts ...Option) *service {
	cfg := config{
		maxPages:       1,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxPages < 1 {
		cfg.maxPages = 1
	}

	return &service{
		source:    source,
		publisher: cfg.publisher,
		maxPages:  cfg.maxPages,
		tracer:    cfg.tracerProvider.Tracer(instrumentationName),
		metrics:   newMetrics(cfg.meterProvider.Meter(instrumentationName)),
	}
}

// WithMaxPages bounds how many pages Build requests per run when the query
// does not set its own limit.
func WithMaxPages(n int) Option {
	return func(c *config) {
		c.maxPages = n
	}
}

// WithPublisher makes Build deliver every non-empty timeline to p.
func WithPublisher(p Publisher) Option {
	return func(c *config) {
		c.publisher = p
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}
