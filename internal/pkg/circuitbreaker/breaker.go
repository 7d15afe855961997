// Package circuitbreaker guards outbound submission paths: repeated failures
// open the circuit and further calls fail fast until a cooldown elapses,
// after which a limited number of probe requests decide whether to close it
// again.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kurirmed/dispatch/internal/pkg/logger"
)

// State represents the breaker state
type State int

const (
	// StateClosed passes calls through
	StateClosed State = iota
	// StateOpen fails calls immediately
	StateOpen
	// StateHalfOpen lets a bounded number of probes through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var (
	// ErrOpen is returned while the circuit is open.
	ErrOpen = errors.New("circuit breaker is open")

	// ErrTooManyProbes is returned when the half-open probe budget is spent.
	ErrTooManyProbes = errors.New("too many probes in half-open state")
)

// Config holds breaker tunables
type Config struct {
	Name             string
	FailureThreshold uint32           // consecutive failures that open the circuit
	SuccessThreshold uint32           // consecutive probe successes that close it
	MaxProbes        uint32           // probe budget while half-open
	Cooldown         time.Duration    // open duration before probing
	Interval         time.Duration    // counter reset interval while closed
	IsFailure        func(error) bool // decides whether an error counts
}

// DefaultConfig returns breaker defaults suitable for the sync submitter
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		SuccessThreshold: 1,
		MaxProbes:        1,
		Cooldown:         60 * time.Second,
		Interval:         30 * time.Second,
		IsFailure: func(err error) bool {
			return err != nil
		},
	}
}

type counts struct {
	requests             uint32
	consecutiveFailures  uint32
	consecutiveSuccesses uint32
}

// Breaker implements the circuit breaker pattern
type Breaker struct {
	config Config

	mu     sync.Mutex
	state  State
	counts counts
	expiry time.Time
}

// New creates a breaker in the closed state
func New(config Config) *Breaker {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5
	}
	if config.SuccessThreshold == 0 {
		config.SuccessThreshold = 1
	}
	if config.MaxProbes == 0 {
		config.MaxProbes = 1
	}
	if config.Cooldown <= 0 {
		config.Cooldown = 60 * time.Second
	}
	if config.Interval <= 0 {
		config.Interval = 30 * time.Second
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	return &Breaker{
		config: config,
		state:  StateClosed,
		expiry: time.Now().Add(config.Interval),
	}
}

// Execute runs fn if the circuit permits it and records the outcome
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.beforeCall(); err != nil {
		return err
	}

	err := fn(ctx)
	b.afterCall(err)
	return err
}

// State returns the current breaker state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) beforeCall() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	switch b.state {
	case StateClosed:
		if b.expiry.Before(now) {
			b.counts = counts{}
			b.expiry = now.Add(b.config.Interval)
		}
	case StateOpen:
		if !b.expiry.Before(now) {
			return ErrOpen
		}
		b.setState(StateHalfOpen)
		b.counts = counts{}
	case StateHalfOpen:
		if b.counts.requests >= b.config.MaxProbes {
			return ErrTooManyProbes
		}
	}

	b.counts.requests++
	return nil
}

func (b *Breaker) afterCall(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.config.IsFailure(err) {
		b.counts.consecutiveFailures++
		b.counts.consecutiveSuccesses = 0

		opened := b.state == StateHalfOpen ||
			(b.state == StateClosed && b.counts.consecutiveFailures >= b.config.FailureThreshold)
		if opened {
			b.setState(StateOpen)
			b.expiry = time.Now().Add(b.config.Cooldown)
		}
		return
	}

	b.counts.consecutiveSuccesses++
	b.counts.consecutiveFailures = 0
	if b.state == StateHalfOpen && b.counts.consecutiveSuccesses >= b.config.SuccessThreshold {
		b.setState(StateClosed)
		b.expiry = time.Now().Add(b.config.Interval)
	}
}

func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	prev := b.state
	b.state = state

	logger.Info("Circuit breaker state changed",
		logger.String("name", b.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(b.counts.consecutiveFailures)))
}
