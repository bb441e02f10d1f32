package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nborodulin471/booking-system/pkg/breaker"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Call(t *testing.T) {
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	cb := breaker.New(10, 200*time.Millisecond, 0.3, 2)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// enough failures to exceed the 30% threshold
	for i := 0; i < 10; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(successfulService), breaker.ErrOpen)

	// after the cooldown probes are let through again
	time.Sleep(300 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// a failure in half-open trips it straight back
	cb.Reset()
	for i := 0; i < 10; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(successfulService), breaker.ErrOpen)
	time.Sleep(300 * time.Millisecond)
	_ = cb.Call(failingService)
	require.ErrorIs(t, cb.Call(successfulService), breaker.ErrOpen)
}
