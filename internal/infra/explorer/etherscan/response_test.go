package etherscan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTransactions(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		records, err := DecodeTransactions([]byte(`  [{"hash":"0x1","timeStamp":"5","input":"0xa9059cbb","from":"0xaa"}]`))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "0x1", records[0].Hash)
		assert.Equal(t, "0xaa", records[0].From)
	})

	t.Run("envelope", func(t *testing.T) {
		records, err := DecodeTransactions([]byte(okBody))

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("empty history envelope", func(t *testing.T) {
		records, err := DecodeTransactions([]byte(`{"status":"0","message":"No transactions found","result":[]}`))

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("error envelope", func(t *testing.T) {
		_, err := DecodeTransactions([]byte(`{"status":"0","message":"NOTOK","result":"Invalid address format"}`))

		assert.ErrorIs(t, err, ErrAPIStatus)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := DecodeTransactions([]byte(`nope`))

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestEnvelope_Err(t *testing.T) {
	tests := []struct {
		name string
		env  envelope
		want error
	}{
		{name: "ok", env: envelope{Status: "1", Message: "OK"}},
		{name: "no transactions", env: envelope{Status: "0", Message: "No transactions found", Result: []byte(`[]`)}},
		{name: "rate limit", env: envelope{Status: "0", Message: "NOTOK", Result: []byte(`"Max rate limit reached"`)}, want: ErrRateLimited},
		{name: "other failure", env: envelope{Status: "0", Message: "NOTOK", Result: []byte(`"Missing/Invalid API Key"`)}, want: ErrAPIStatus},
		{name: "ok message with failed status", env: envelope{Status: "0", Message: "OK", Result: []byte(`[]`)}, want: ErrAPIStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.env.Err()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIntervalThrottle(t *testing.T) {
	t.Run("spaces consecutive waits", func(t *testing.T) {
		throttle := NewIntervalThrottle(40 * time.Millisecond)

		start := time.Now()
		require.NoError(t, throttle.Wait(t.Context()))
		require.NoError(t, throttle.Wait(t.Context()))
		require.NoError(t, throttle.Wait(t.Context()))

		assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
	})

	t.Run("first wait is immediate", func(t *testing.T) {
		throttle := NewIntervalThrottle(time.Hour)

		start := time.Now()
		require.NoError(t, throttle.Wait(t.Context()))

		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("non-positive interval disables throttling", func(t *testing.T) {
		throttle := NewIntervalThrottle(0)

		for range 100 {
			require.NoError(t, throttle.Wait(t.Context()))
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		throttle := NewIntervalThrottle(time.Hour)
		require.NoError(t, throttle.Wait(t.Context()))

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, throttle.Wait(ctx))
	})
}
