package pipeline

import "errors"

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrDuplicateOperation = errors.New("duplicate operation")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrInvalidAdvice      = errors.New("invalid advice")
	ErrInvalidParam       = errors.New("invalid parameter")
)

// Sentinels matched by the typed failures below through errors.Is.
var (
	ErrPolicyViolation  = errors.New("policy violation")
	ErrOperationFailure = errors.New("operation failure")
	ErrAdviceFailure    = errors.New("advice failure")
)

// PolicyViolationError is returned when a before advice rejects an invocation.
type PolicyViolationError struct {
	Operation string
	Advice    string
	Err       error
}

func (e *PolicyViolationError) Error() string { return e.Err.Error() }

func (e *PolicyViolationError) Unwrap() error { return e.Err }

func (e *PolicyViolationError) Is(target error) bool { return target == ErrPolicyViolation }

// OperationFailureError is returned when the operation body fails.
type OperationFailureError struct {
	Operation string
	Err       error
}

func (e *OperationFailureError) Error() string { return e.Err.Error() }

func (e *OperationFailureError) Unwrap() error { return e.Err }

func (e *OperationFailureError) Is(target error) bool { return target == ErrOperationFailure }

// AdviceFailureError is returned when an around, after or finally advice fails.
type AdviceFailureError struct {
	Operation string
	Advice    string
	Kind      Kind
	Err       error
}

func (e *AdviceFailureError) Error() string { return e.Err.Error() }

func (e *AdviceFailureError) Unwrap() error { return e.Err }

func (e *AdviceFailureError) Is(target error) bool { return target == ErrAdviceFailure }

// classified reports whether err already carries one of the pipeline failure types.
func classified(err error) bool {
	var (
		policy    *PolicyViolationError
		operation *OperationFailureError
		advice    *AdviceFailureError
	)

	return errors.As(err, &policy) || errors.As(err, &operation) || errors.As(err, &advice)
}
