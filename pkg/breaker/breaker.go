// Package breaker is a sliding-window circuit breaker. The lending event
// publisher wraps broker sends with it so a dead broker does not slow every
// borrow and return down to the producer timeout.
package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

type Breaker interface {
	Call(fn func() error) error
	Reset()
}

type breaker struct {
	mu sync.Mutex

	state state
	// trip when this share of the window has failed
	threshold float64
	// outcome ring buffer, true marks a failure
	window []bool
	pos    int
	// how long open lasts before probing
	cooldown time.Duration
	openedAt time.Time
	// consecutive successes required to close from half-open
	recovery  int
	successes int
}

func New(windowSize int, cooldown time.Duration, threshold float64, recovery int) Breaker {
	return &breaker{
		state:     closed,
		threshold: threshold,
		window:    make([]bool, windowSize),
		cooldown:  cooldown,
		recovery:  recovery,
	}
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == open {
		if time.Since(b.openedAt) <= b.cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = halfOpen
		b.successes = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.window[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.window)

	if b.state == halfOpen {
		if err != nil {
			b.trip()
		} else if b.successes++; b.successes > b.recovery {
			b.resetLocked()
		}
		return err
	}

	fails := 0
	for _, failed := range b.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.threshold {
		b.trip()
	}

	return err
}

func (b *breaker) trip() {
	b.state = open
	b.successes = 0
	b.openedAt = time.Now()
}

// Reset closes the breaker and clears the outcome window.
func (b *breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
}

func (b *breaker) resetLocked() {
	for i := range b.window {
		b.window[i] = false
	}
	b.successes = 0
	b.pos = 0
	b.state = closed
}
