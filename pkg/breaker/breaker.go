package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	Reset()
}

// circuitBreaker tracks the outcome of the last windowSize calls. When the
// failure share reaches threshold it opens; after cooldown it lets probe
// requests through and closes again once recoveryCalls of them succeed.
type circuitBreaker struct {
	mu sync.Mutex

	state           state
	lastAttemptedAt time.Time

	windowSize int
	window     []bool
	pos        int

	threshold     float64
	cooldown      time.Duration
	recoveryCalls int
	successCount  int
}

func New(windowSize int, cooldown time.Duration, threshold float64, recoveryCalls int) CircuitBreaker {
	return &circuitBreaker{
		state:         closed,
		windowSize:    windowSize,
		window:        make([]bool, windowSize),
		threshold:     threshold,
		cooldown:      cooldown,
		recoveryCalls: recoveryCalls,
	}
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == open {
		if time.Since(cb.lastAttemptedAt) <= cb.cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = halfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.windowSize

	if cb.state == halfOpen {
		if err != nil {
			cb.state = open
			cb.successCount = 0
			cb.lastAttemptedAt = time.Now()
			return err
		}
		cb.successCount++
		if cb.successCount > cb.recoveryCalls {
			cb.Reset()
		}
		return err
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.windowSize) >= cb.threshold {
		cb.state = open
		cb.successCount = 0
		cb.lastAttemptedAt = time.Now()
	}

	return err
}

func (cb *circuitBreaker) Reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.pos = 0
	cb.successCount = 0
	cb.state = closed
}
