// Package etherscan implements timeline.TransactionSource on top of the
// Etherscan account API (module=account, action=txlist).
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pysyun/etherscan-transfers/internal/pkg/logger"
	"github.com/pysyun/etherscan-transfers/internal/pkg/resilience/retry"
	"github.com/pysyun/etherscan-transfers/internal/timeline"
	"github.com/pysyun/etherscan-transfers/internal/transfer"
)

// DefaultBaseURL is the Ethereum mainnet API endpoint.
const DefaultBaseURL = "https://api.etherscan.io/api"

// ErrUnexpectedStatusCode is returned for any non-2xx HTTP response.
var ErrUnexpectedStatusCode = errors.New("unexpected http status code")

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	chainID    string
	throttle   Throttle
	retry      retry.Retry
}

var _ timeline.TransactionSource = (*client)(nil)

// Transactions implements timeline.TransactionSource. Every attempt waits on
// the throttle first. Rate-limit rejections are retried under the client's
// retry policy; every other failure is returned as is.
func (c *client) Transactions(ctx context.Context, q timeline.Query) ([]transfer.TransactionRecord, error) {
	var records []transfer.TransactionRecord
	err := c.retry.Execute(ctx, func() error {
		var err error
		records, err = c.fetchPage(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (c *client) fetchPage(ctx context.Context, q timeline.Query) ([]transfer.TransactionRecord, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint, err := c.txlistURL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	records, err := env.records()
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "etherscan page fetched",
		"page", q.Page,
		"offset", q.Offset,
		"records", len(records),
	)

	return records, nil
}

func (c *client) txlistURL(q timeline.Query) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	params := u.Query()
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", q.Address)
	params.Set("startblock", strconv.FormatUint(q.StartBlock, 10))
	params.Set("endblock", strconv.FormatUint(q.EndBlock, 10))
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("sort", q.Sort)
	if c.chainID != "" {
		params.Set("chainid", c.chainID)
	}
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	u.RawQuery = params.Encode()
	return u.String(), nil
}

type config struct {
	baseURL  string
	apiKey   string
	chainID  string
	throttle Throttle
	retry    retry.Retry
}

type Option func(*config)

// NewClient returns an Etherscan transaction source using httpClient.
//
// Defaults: mainnet endpoint, no API key, a 200ms in-process throttle and up
// to 3 attempts on rate-limit rejections.
func NewClient(httpClient *http.Client, opts ...Option) *client {
	cfg := config{
		baseURL:  DefaultBaseURL,
		throttle: NewIntervalThrottle(DefaultMinInterval),
		retry:    NewRateLimitRetry(3),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		httpClient: httpClient,
		baseURL:    cfg.baseURL,
		apiKey:     cfg.apiKey,
		chainID:    cfg.chainID,
		throttle:   cfg.throttle,
		retry:      cfg.retry,
	}
}

// NewRateLimitRetry returns a policy retrying only ErrRateLimited, up to
// attempts times in total, backing off from one second. Every retry is logged
// at warn level. opts are applied last and may override the backoff.
func NewRateLimitRetry(attempts uint, opts ...retry.Option) retry.Retry {
	return retry.New(append([]retry.Option{
		retry.WithAttempts(attempts),
		retry.WithDelay(time.Second),
		retry.WithMaxDelay(5*time.Second),
		retry.WithRetryIf(func(err error) bool {
			return errors.Is(err, ErrRateLimited)
		}),
		retry.WithOnRetry(func(ctx context.Context, attempt uint, err error) {
			logger.Warn(ctx, "etherscan rate limit reached, retrying",
				"attempt", attempt+1,
				"attempts.max", attempts,
				"error", err,
			)
		}),
	}, opts...)...)
}

func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithChainID selects the chain on multichain endpoints.
func WithChainID(id string) Option {
	return func(c *config) {
		c.chainID = id
	}
}

func WithThrottle(t Throttle) Option {
	return func(c *config) {
		c.throttle = t
	}
}

func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}
