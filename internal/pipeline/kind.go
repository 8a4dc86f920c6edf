package pipeline

import "fmt"

// Kind is the timing of an advice relative to the wrapped operation.
type Kind int

const (
	// Before advices run ahead of the operation and may veto it.
	Before Kind = iota
	// After advices run once the operation succeeded.
	After
	// Around advices wrap the rest of the chain behind an explicit proceed.
	Around
	// Finally advices run after every invocation, whatever its outcome.
	Finally
)

func (k Kind) String() string {
	switch k {
	case Before:
		return "BEFORE"
	case After:
		return "AFTER"
	case Around:
		return "AROUND"
	case Finally:
		return "FINALLY"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is the stage an invocation is in.
type State int

const (
	Pending State = iota
	BeforeRunning
	AroundRunning
	BodyRunning
	AfterRunning
	FinallyRunning
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case BeforeRunning:
		return "BEFORE_RUNNING"
	case AroundRunning:
		return "AROUND_RUNNING"
	case BodyRunning:
		return "BODY_RUNNING"
	case AfterRunning:
		return "AFTER_RUNNING"
	case FinallyRunning:
		return "FINALLY_RUNNING"
	case Completed:
		return "COMPLETED"
	case Failed:
		return "FAILED"
	}

	return fmt.Sprintf("State(%d)", int(s))
}
