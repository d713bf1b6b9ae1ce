// Package optimistic applies a change locally first and confirms or rolls it back
// once the authoritative write finishes.
package optimistic

import (
	"context"
	"errors"
	"sync"
)

var ErrInvalidTransition = errors.New("invalid optimistic update transition")

type State int

const (
	StateIdle State = iota
	StatePending
	StateConfirmed
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateConfirmed:
		return "confirmed"
	case StateRolledBack:
		return "failed-rolled-back"
	default:
		return "unknown"
	}
}

// WriteFunc performs the authoritative write of the projected value and returns the stored value.
type WriteFunc[T any] func(ctx context.Context, projected T) (T, error)

// Mutation tracks one optimistic update of a value of type T.
//
//	idle --Apply--> pending --Commit ok--> confirmed
//	                        --Commit err-> failed-rolled-back
type Mutation[T any] struct {
	mu        sync.Mutex
	state     State
	original  T
	current   T
	err       error
	committed bool
	settled   chan struct{}
}

func New[T any](value T) *Mutation[T] {
	return &Mutation[T]{
		state:    StateIdle,
		original: value,
		current:  value,
		settled:  make(chan struct{}),
	}
}

// Apply projects the local change. Only valid from idle.
func (m *Mutation[T]) Apply(project func(T) T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateIdle {
		return m.current, ErrInvalidTransition
	}
	m.current = project(m.original)
	m.state = StatePending
	return m.current, nil
}

// Commit runs write in the background. The mutation settles as confirmed with the
// written value, or as rolled back to the original value when write fails.
func (m *Mutation[T]) Commit(ctx context.Context, write WriteFunc[T]) error {
	m.mu.Lock()
	if m.state != StatePending || m.committed {
		m.mu.Unlock()
		return ErrInvalidTransition
	}
	m.committed = true
	projected := m.current
	m.mu.Unlock()

	go func() {
		stored, err := write(ctx, projected)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			m.state = StateRolledBack
			m.current = m.original
			m.err = err
		} else {
			m.state = StateConfirmed
			m.current = stored
		}
		close(m.settled)
	}()

	return nil
}

// Wait blocks until the mutation settles and returns the authoritative value with the write error, if any.
// A settled mutation wins over a done ctx.
func (m *Mutation[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-m.settled:
	default:
		select {
		case <-m.settled:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.err
}

// Settled is closed once the write has finished.
func (m *Mutation[T]) Settled() <-chan struct{} {
	return m.settled
}

// Err is the write error of a rolled back mutation, nil otherwise.
func (m *Mutation[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Mutation[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Value is the projection while pending, the stored value once confirmed
// and the original value after a rollback.
func (m *Mutation[T]) Value() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
