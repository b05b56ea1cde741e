package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pysyun/etherscan-transfers/internal/config"
	"github.com/pysyun/etherscan-transfers/internal/handlers/cli"
	"github.com/pysyun/etherscan-transfers/internal/infra/explorer/etherscan"
	"github.com/pysyun/etherscan-transfers/internal/infra/messaging/nats"
	"github.com/pysyun/etherscan-transfers/internal/infra/redis"
	"github.com/pysyun/etherscan-transfers/internal/pkg/logger"
	"github.com/pysyun/etherscan-transfers/internal/pkg/telemetry"
	transporthttp "github.com/pysyun/etherscan-transfers/internal/pkg/transport/http"
	"github.com/pysyun/etherscan-transfers/internal/timeline"
)

// throttleName identifies the shared request slot of one API key.
const throttleName = "etherscan"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "etherscan-transfers: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, closeAll, err := newTimelineService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	return cli.Run(ctx, svc)
}

// newTimelineService wires the explorer client, its throttle and the optional
// publisher. The returned func releases every connection that was opened.
func newTimelineService(ctx context.Context, cfg config.Config) (timeline.Service, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Etherscan.RequestTimeout),
		transporthttp.WithRetryMax(cfg.Etherscan.RetryMax),
		transporthttp.WithLogger(logger.Leveled(ctx)),
	).StandardClient()

	var throttle etherscan.Throttle = etherscan.NewIntervalThrottle(cfg.Etherscan.MinRequestInterval)
	if cfg.Redis.Enabled() {
		rc, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, func() { _ = rc.Close() })

		throttle = rc.Throttle(throttleName, cfg.Etherscan.MinRequestInterval)
		logger.Debug(ctx, "using shared request throttle", "redis.addr", cfg.Redis.Addr)
	}

	source := etherscan.NewClient(httpClient,
		etherscan.WithBaseURL(cfg.Etherscan.BaseURL),
		etherscan.WithAPIKey(cfg.Etherscan.APIKey),
		etherscan.WithChainID(cfg.Etherscan.ChainID),
		etherscan.WithThrottle(throttle),
		etherscan.WithRetry(etherscan.NewRateLimitRetry(cfg.Etherscan.RateLimitAttempts)),
	)

	var opts []timeline.Option
	if cfg.NATS.Enabled() {
		publisher, err := nats.NewPublisher(ctx, cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, publisher.Close)

		opts = append(opts, timeline.WithPublisher(publisher))
	}

	return timeline.New(source, opts...), closeAll, nil
}
