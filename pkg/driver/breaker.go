package driver

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerOptions configures the circuit breaker wrapped around a Querier.
type BreakerOptions struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	ReadyToTripRatio float64
}

// DefaultBreakerOptions mirrors the tuning used for cloud-hosted stores:
// trip after 60% failures over a 60s window, probe again after 30s.
func DefaultBreakerOptions() BreakerOptions {
	return BreakerOptions{
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		ReadyToTripRatio: 0.6,
	}
}

// BreakerQuerier wraps a Querier with a circuit breaker so a flapping or
// unreachable store sheds load quickly instead of queueing timeouts. An open
// breaker surfaces as a query error, which the engine already treats as "no
// candidate at this radius".
type BreakerQuerier struct {
	inner   Querier
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerQuerier wraps inner with a circuit breaker.
func NewBreakerQuerier(inner Querier, opts BreakerOptions) *BreakerQuerier {
	ratio := opts.ReadyToTripRatio
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultBreakerOptions().ReadyToTripRatio
	}

	settings := gobreaker.Settings{
		Name:        "graph-querier",
		MaxRequests: opts.MaxRequests,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= ratio
		},
	}

	return &BreakerQuerier{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerQuerier) ReadRows(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return b.inner.ReadRows(ctx, query, params)
	})
	if err != nil {
		return nil, err
	}
	return result.([]map[string]any), nil
}

func (b *BreakerQuerier) ReadSingle(ctx context.Context, query string, params map[string]any) (map[string]any, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		row, err := b.inner.ReadSingle(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(map[string]any), nil
}

func (b *BreakerQuerier) VerifyConnectivity(ctx context.Context) error {
	return b.inner.VerifyConnectivity(ctx)
}

func (b *BreakerQuerier) Close(ctx context.Context) error {
	return b.inner.Close(ctx)
}
