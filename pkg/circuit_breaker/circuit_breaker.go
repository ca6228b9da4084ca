package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status
	now   func() time.Time

	// window of the last recordLength outcomes, true means failed
	window []bool
	pos    int

	// open -> half-open after openTimeout
	openTimeout time.Duration
	openedAt    time.Time
	// failure ratio over the window that opens the breaker
	threshold float64
	// consecutive successes in half-open needed to close
	recoveryRequests int
	successCount     int
}

type Option func(cb *circuitBreaker)

func WithClock(now func() time.Time) Option {
	return func(cb *circuitBreaker) {
		cb.now = now
	}
}

func New(recordLength int, openTimeout time.Duration, threshold float64, recoveryRequests int, opts ...Option) CircuitBreaker {
	if recordLength <= 0 {
		recordLength = 1
	}
	cb := &circuitBreaker{
		state:            Closed,
		now:              time.Now,
		window:           make([]bool, recordLength),
		openTimeout:      openTimeout,
		threshold:        threshold,
		recoveryRequests: recoveryRequests,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(service func() error) error {
	if !cb.allow() {
		return ErrOpenCB
	}

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Open {
		return true
	}
	if cb.now().Sub(cb.openedAt) < cb.openTimeout {
		return false
	}
	cb.state = HalfOpen
	cb.successCount = 0
	return true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.window[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.window)

	switch cb.state {
	case HalfOpen:
		if failed {
			cb.trip()
			return
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
	case Closed:
		fails := 0
		for _, f := range cb.window {
			if f {
				fails++
			}
		}
		if float64(fails)/float64(len(cb.window)) >= cb.threshold {
			cb.trip()
		}
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
