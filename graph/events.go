package graph

import "github.com/bububa/graph-agents/components"

// Event is one intermediate per-node output emitted while a run progresses.
type Event struct {
	// RunID identifies the run the event belongs to. Handlers shared across
	// concurrent runs key on it.
	RunID string
	// Step is the 1-based node invocation counter within the run.
	Step int
	// Node is the name of the node which just ran (router or worker).
	Node string
	// NewMessages are the messages this invocation contributed.
	NewMessages []components.Message
	// Next is the routing value after the invocation.
	Next string
}

// EventHandler observes per-node outputs. Handlers run synchronously on the
// executor goroutine and must not block.
type EventHandler func(Event)

// RunResult is the terminal outcome of a streamed run.
type RunResult struct {
	State *State
	Err   error
}
