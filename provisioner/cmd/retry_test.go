package cmd

import (
	"context"
	"github.com/cenkalti/backoff/v4"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRetryGivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	err := retryWithBackOff("test", backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 2), func() error {
		attempts++
		return errors.KindErrorf(errors.ErrTransient, "still rate limited")
	})
	require.True(t, errors.IsTransient(err))
	require.Equal(t, 3, attempts)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	attempts := 0
	err := retryWithBackOff("test", backoff.NewConstantBackOff(time.Millisecond), func() error {
		attempts++
		return errors.KindErrorf(errors.ErrPermissionDenied, "denied")
	})
	require.True(t, errors.IsPermissionDenied(err))
	require.Equal(t, 1, attempts)
}

func TestRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := retryWithBackOff("test", backoff.WithContext(backoff.NewConstantBackOff(time.Millisecond), ctx), func() error {
		attempts++
		cancel()
		return errors.KindErrorf(errors.ErrTransient, "timeout")
	})
	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestRetryBudgetMustBePositive(t *testing.T) {
	require.NoError(t, validateRetryBudget(time.Minute, time.Second))
	require.True(t, errors.IsInvalidInput(validateRetryBudget(0, time.Second)))
	require.True(t, errors.IsInvalidInput(validateRetryBudget(-time.Second, time.Second)))
	require.True(t, errors.IsInvalidInput(validateRetryBudget(time.Minute, 0)))
}
