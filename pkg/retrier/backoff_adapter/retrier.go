package backoff_adapter

import (
	"context"

	"dispatch/pkg/retrier"

	"github.com/cenkalti/backoff/v4"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(r.policy(), ctx))
}

func (r *Retrier) policy() backoff.BackOff {
	var b backoff.BackOff
	if r.config.InitialInterval <= 0 {
		b = &backoff.ZeroBackOff{}
	} else {
		b = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(r.config.InitialInterval),
			backoff.WithMaxInterval(r.config.MaxInterval),
			backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
			backoff.WithRandomizationFactor(r.config.Randomization),
			backoff.WithMultiplier(r.config.Multiplier),
		)
	}

	if r.config.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxRetries)
	}
	return b
}
