package cmd

import (
	"context"
	"github.com/cenkalti/backoff/v4"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/provisionerconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"time"
)

// validateRetryBudget rejects durations that backoff treats as unbounded.
func validateRetryBudget(maxElapsedTime time.Duration, initialInterval time.Duration) error {
	if maxElapsedTime <= 0 {
		return errors.KindErrorf(errors.ErrInvalidInput, "%s must be positive, got %s", provisionerconfig.MaxRetryElapsedTimeKey, maxElapsedTime)
	}
	if initialInterval <= 0 {
		return errors.KindErrorf(errors.ErrInvalidInput, "%s must be positive, got %s", provisionerconfig.InitialRetryIntervalKey, initialInterval)
	}
	return nil
}

func newBackOff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = viper.GetDuration(provisionerconfig.InitialRetryIntervalKey)
	exponential.MaxElapsedTime = viper.GetDuration(provisionerconfig.MaxRetryElapsedTimeKey)
	exponential.Reset()
	return backoff.WithContext(exponential, ctx)
}

// withRetry runs operation until it succeeds, fails with a non-transient error, or the retry budget runs out.
func withRetry(ctx context.Context, name string, operation func() error) error {
	return retryWithBackOff(name, newBackOff(ctx), operation)
}

func retryWithBackOff(name string, b backoff.BackOff, operation func() error) error {
	attempt := func() error {
		err := operation()
		if err != nil && !errors.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		logrus.WithError(err).WithField("operation", name).WithField("retryIn", wait.String()).Warn("Transient error, retrying")
	}

	if err := backoff.RetryNotify(attempt, b, notify); err != nil {
		return errors.Wrap(err)
	}
	return nil
}
