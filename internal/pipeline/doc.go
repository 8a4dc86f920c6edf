// Package pipeline wraps named operations with before, around, after and finally advices.
//
// Operations and advices are declared on a Registry at startup and frozen with Build:
//
//	registry := pipeline.NewRegistry(logger, clock.New())
//	_ = registry.Handle("withdraw", body)
//	_ = registry.Register("withdraw", pipeline.NewBefore("verify-pin", verify))
//	_ = registry.Register("withdraw", pipeline.NewAround("measure-time", measure))
//	p := registry.Build()
//
//	result, err := p.Invoke(ctx, "withdraw", 500)
//
// For one invocation advices run in this order: before advices in registration order,
// around advices with the first registered outermost, the body, after advices in
// registration order on success only, then finally advices whatever the outcome.
//
// The first failure stops the chain and is returned as a *PolicyViolationError when a
// before advice rejected the call, an *OperationFailureError when the body failed, or an
// *AdviceFailureError when an around, after or finally advice failed. Finally advices still
// run after a failure; their own failure is only returned if nothing failed before.
package pipeline
