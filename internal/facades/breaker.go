package facades

import (
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
)

// ErrBreakerOpen is returned when the circuit is open and calls are being
// rejected without reaching the remote service.
var ErrBreakerOpen = errors.New("circuit breaker is open")

type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

// CircuitBreaker guards calls to one remote account service. After
// maxFailures consecutive failures the circuit opens for openTimeout, then
// a single probe call is allowed through.
type CircuitBreaker struct {
	name        string
	maxFailures int
	openTimeout time.Duration

	mu          sync.Mutex
	state       breakerState
	failures    int
	openedAt    time.Time
	probeInUse  bool
}

func NewCircuitBreaker(name string, maxFailures int, openTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		name:        name,
		maxFailures: maxFailures,
		openTimeout: openTimeout,
		state:       breakerClosed,
	}
}

// Allow reports whether a call may proceed. The caller must report the
// outcome via Success or Failure.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case breakerClosed:
		return true
	case breakerOpen:
		if time.Since(cb.openedAt) < cb.openTimeout {
			return false
		}
		cb.state = breakerHalfOpen
		cb.probeInUse = true
		logger.Log.Infow("circuit breaker half-open", "breaker", cb.name)
		return true
	case breakerHalfOpen:
		// only one probe at a time
		if cb.probeInUse {
			return false
		}
		cb.probeInUse = true
		return true
	}
	return false
}

// Success records a successful call and closes the circuit.
func (cb *CircuitBreaker) Success() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != breakerClosed {
		logger.Log.Infow("circuit breaker closed", "breaker", cb.name)
	}
	cb.state = breakerClosed
	cb.failures = 0
	cb.probeInUse = false
}

// Failure records a failed call. The circuit opens once the consecutive
// failure count reaches the threshold, or immediately if a half-open probe
// fails.
func (cb *CircuitBreaker) Failure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.probeInUse = false

	if cb.state == breakerHalfOpen || cb.failures >= cb.maxFailures {
		if cb.state != breakerOpen {
			logger.Log.Warnw("circuit breaker opened", "breaker", cb.name, "failures", cb.failures)
		}
		cb.state = breakerOpen
		cb.openedAt = time.Now()
	}
}
