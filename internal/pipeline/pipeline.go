package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/benbjohnson/clock"
)

type operation struct {
	name    string
	body    BodyFunc
	before  []Advice
	around  []Advice
	after   []Advice
	finally []Advice
}

// Registry collects operations and their advices at startup.
// It is not safe for concurrent use; Build it once registration is done.
type Registry struct {
	operations map[string]*operation
	logger     *slog.Logger
	clock      clock.Clock
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger, clk clock.Clock) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	if clk == nil {
		clk = clock.New()
	}

	return &Registry{
		operations: make(map[string]*operation),
		logger:     logger,
		clock:      clk,
	}
}

// Handle declares an operation and its body.
func (r *Registry) Handle(name string, body BodyFunc) error {
	if name == "" || body == nil {
		return fmt.Errorf("%w: %q", ErrInvalidOperation, name)
	}

	if _, exists := r.operations[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOperation, name)
	}

	r.operations[name] = &operation{name: name, body: body}

	return nil
}

// Register attaches an advice to a declared operation.
// Advices of the same kind run in registration order; the first around advice is the outermost.
func (r *Registry) Register(name string, advice Advice) error {
	op, ok := r.operations[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	if !advice.valid() {
		return fmt.Errorf("%w: %q on %s", ErrInvalidAdvice, advice.name, name)
	}

	switch advice.kind {
	case Before:
		op.before = append(op.before, advice)
	case Around:
		op.around = append(op.around, advice)
	case After:
		op.after = append(op.after, advice)
	case Finally:
		op.finally = append(op.finally, advice)
	}

	r.logger.Debug("Advice registered", "operation", name, "advice", advice.name, "kind", advice.kind)

	return nil
}

// Build freezes the registry into a pipeline. Later changes to the registry are not visible to it.
func (r *Registry) Build() *Pipeline {
	operations := make(map[string]operation, len(r.operations))
	for name, op := range r.operations {
		operations[name] = operation{
			name:    op.name,
			body:    op.body,
			before:  slices.Clone(op.before),
			around:  slices.Clone(op.around),
			after:   slices.Clone(op.after),
			finally: slices.Clone(op.finally),
		}
	}

	return &Pipeline{
		operations: operations,
		logger:     r.logger,
		clock:      r.clock,
	}
}

// Pipeline invokes operations through their advices. It is read-only and safe for concurrent use.
type Pipeline struct {
	operations map[string]operation
	logger     *slog.Logger
	clock      clock.Clock
}

// Operations returns the sorted names of all declared operations.
func (p *Pipeline) Operations() []string {
	return slices.Sorted(maps.Keys(p.operations))
}

// Invoke runs the named operation with params and returns its result or the first failure.
func (p *Pipeline) Invoke(ctx context.Context, name string, params ...any) (any, error) {
	op, ok := p.operations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	inv := newInvocation(name, params, p.clock.Now(), p.logger)

	err := p.runBefore(ctx, op, inv)
	if err == nil {
		inv.result, err = p.proceed(ctx, op, inv, 0)
	}

	if err == nil {
		err = p.runAfter(ctx, op, inv)
	}

	if err != nil {
		inv.result, inv.err = nil, err
	}

	if finallyErr := p.runFinally(ctx, op, inv); finallyErr != nil && err == nil {
		err = finallyErr
		inv.result, inv.err = nil, err
	}

	if err != nil {
		inv.transition(Failed)
		inv.logger.Debug("Invocation failed", "error", err, "elapsed", p.clock.Since(inv.startedAt))

		return nil, err
	}

	inv.transition(Completed)

	return inv.result, nil
}

func (p *Pipeline) runBefore(ctx context.Context, op operation, inv *Invocation) error {
	inv.transition(BeforeRunning)

	for _, advice := range op.before {
		if err := advice.before(ctx, inv); err != nil {
			if classified(err) {
				return err
			}

			return &PolicyViolationError{Operation: op.name, Advice: advice.name, Err: err}
		}
	}

	return nil
}

// proceed runs around advice idx, or the body once every around advice has been entered.
func (p *Pipeline) proceed(ctx context.Context, op operation, inv *Invocation, idx int) (any, error) {
	if idx == len(op.around) {
		inv.transition(BodyRunning)

		result, err := op.body(ctx, inv)
		if err != nil {
			if classified(err) {
				return nil, err
			}

			return nil, &OperationFailureError{Operation: op.name, Err: err}
		}

		return result, nil
	}

	advice := op.around[idx]
	inv.transition(AroundRunning)

	result, err := advice.around(ctx, inv, func(ctx context.Context) (any, error) {
		defer inv.transition(AroundRunning)

		return p.proceed(ctx, op, inv, idx+1)
	})
	if err != nil {
		if classified(err) {
			return nil, err
		}

		return nil, &AdviceFailureError{Operation: op.name, Advice: advice.name, Kind: Around, Err: err}
	}

	return result, nil
}

func (p *Pipeline) runAfter(ctx context.Context, op operation, inv *Invocation) error {
	if len(op.after) == 0 {
		return nil
	}

	inv.transition(AfterRunning)

	for _, advice := range op.after {
		if err := advice.after(ctx, inv); err != nil {
			return &AdviceFailureError{Operation: op.name, Advice: advice.name, Kind: After, Err: err}
		}
	}

	return nil
}

// runFinally runs every finally advice and returns the first failure among them.
func (p *Pipeline) runFinally(ctx context.Context, op operation, inv *Invocation) error {
	if len(op.finally) == 0 {
		return nil
	}

	inv.transition(FinallyRunning)

	var first error

	for _, advice := range op.finally {
		if err := advice.after(ctx, inv); err != nil {
			inv.logger.Warn("Finally advice failed", "advice", advice.name, "error", err)

			if first == nil {
				first = &AdviceFailureError{Operation: op.name, Advice: advice.name, Kind: Finally, Err: err}
			}
		}
	}

	return first
}
