package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrRoutingViolation reports a router decision outside the closed set
	// of declared worker names plus the terminal sentinel. It is fatal to
	// the run: the structural output constraint on the router is supposed
	// to make it unreachable.
	ErrRoutingViolation = errors.New("graph: routing decision outside declared workers")
	// ErrStepBudget reports a run which did not converge within the
	// configured step limit.
	ErrStepBudget = errors.New("graph: step budget exceeded")
	// ErrMissingRouter is returned by Compile when no router was configured.
	ErrMissingRouter = errors.New("graph: missing router")
)

// RoutingError carries the offending decision alongside ErrRoutingViolation.
type RoutingError struct {
	Router   string
	Decision string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("%s decided %q which is not a declared worker", e.Router, e.Decision)
}

func (e *RoutingError) Is(target error) bool {
	return target == ErrRoutingViolation
}

// StepBudgetError carries the partial state of an aborted run for
// diagnostics alongside ErrStepBudget.
type StepBudgetError struct {
	Limit int
	State *State
}

func (e *StepBudgetError) Error() string {
	return fmt.Sprintf("run did not converge within %d steps", e.Limit)
}

func (e *StepBudgetError) Is(target error) bool {
	return target == ErrStepBudget
}

// NodeError wraps a fatal failure of one node with the node name and the
// last known state for diagnostics.
type NodeError struct {
	Node  string
	State *State
	Err   error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %s: %v", e.Node, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
