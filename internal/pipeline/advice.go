package pipeline

import "context"

// BodyFunc is the implementation of an operation.
type BodyFunc func(ctx context.Context, inv *Invocation) (any, error)

// BeforeFunc runs ahead of the operation. A non-nil error rejects the call.
type BeforeFunc func(ctx context.Context, inv *Invocation) error

// AfterFunc runs once the operation finished. It is used by After and Finally advices.
type AfterFunc func(ctx context.Context, inv *Invocation) error

// ProceedFunc continues the wrapped chain from inside an around advice.
type ProceedFunc func(ctx context.Context) (any, error)

// AroundFunc wraps the remaining chain. It decides when, and whether, to call proceed.
type AroundFunc func(ctx context.Context, inv *Invocation, proceed ProceedFunc) (any, error)

// Advice is a named piece of behaviour attached to an operation.
type Advice struct {
	name   string
	kind   Kind
	before BeforeFunc
	after  AfterFunc
	around AroundFunc
}

// NewBefore creates a before advice.
func NewBefore(name string, fn BeforeFunc) Advice {
	return Advice{name: name, kind: Before, before: fn}
}

// NewAfter creates an advice that runs after a successful operation.
func NewAfter(name string, fn AfterFunc) Advice {
	return Advice{name: name, kind: After, after: fn}
}

// NewAround creates an around advice.
func NewAround(name string, fn AroundFunc) Advice {
	return Advice{name: name, kind: Around, around: fn}
}

// NewFinally creates an advice that runs after the operation regardless of its outcome.
// The invocation passed to fn carries the outcome in Err and Result.
func NewFinally(name string, fn AfterFunc) Advice {
	return Advice{name: name, kind: Finally, after: fn}
}

// Name returns the advice name used in errors and logs.
func (a Advice) Name() string {
	return a.name
}

// Kind returns the advice timing.
func (a Advice) Kind() Kind {
	return a.kind
}

func (a Advice) valid() bool {
	if a.name == "" {
		return false
	}

	switch a.kind {
	case Before:
		return a.before != nil
	case After, Finally:
		return a.after != nil
	case Around:
		return a.around != nil
	}

	return false
}
