package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Invocation is the per-call record shared by the advices and the body of one invoke.
// It is never retained by the pipeline after the call returns.
type Invocation struct {
	id        uuid.UUID
	operation string
	params    []any
	startedAt time.Time
	state     State
	result    any
	err       error
	logger    *slog.Logger
}

func newInvocation(operation string, params []any, startedAt time.Time, logger *slog.Logger) *Invocation {
	id := uuid.New()

	return &Invocation{
		id:        id,
		operation: operation,
		params:    params,
		startedAt: startedAt,
		state:     Pending,
		logger:    logger.With("operation", operation, "invocation", id.String()),
	}
}

// ID returns the unique identifier of the invocation.
func (i *Invocation) ID() uuid.UUID { return i.id }

// Operation returns the invoked operation name.
func (i *Invocation) Operation() string { return i.operation }

// Params returns the input parameters in call order.
func (i *Invocation) Params() []any { return i.params }

// StartedAt returns when the invocation left the pending state.
func (i *Invocation) StartedAt() time.Time { return i.startedAt }

// State returns the current stage of the invocation.
func (i *Invocation) State() State { return i.state }

// Result returns the operation result. It is set once the around chain returned successfully.
func (i *Invocation) Result() any { return i.result }

// Err returns the failure of the invocation, if any. Finally advices use it to observe the outcome.
func (i *Invocation) Err() error { return i.err }

func (i *Invocation) transition(state State) {
	i.logger.Debug("Invocation state changed", "from", i.state, "to", state)
	i.state = state
}

// Arg returns the parameter at index idx converted to T.
func Arg[T any](inv *Invocation, idx int) (T, error) {
	var zero T

	if idx < 0 || idx >= len(inv.params) {
		return zero, fmt.Errorf("%w: %s has no parameter %d", ErrInvalidParam, inv.operation, idx)
	}

	v, ok := inv.params[idx].(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s parameter %d has type %T", ErrInvalidParam, inv.operation, idx, inv.params[idx])
	}

	return v, nil
}
