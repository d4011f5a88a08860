package graph

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/bububa/graph-agents/components"
)

// DefaultStepLimit is the default maximum number of node invocations
// (router and worker alike) per run.
const DefaultStepLimit = 25

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithEventHandler registers a per-node output observer.
func WithEventHandler(fn EventHandler) ExecutorOption {
	return func(e *Executor) {
		e.eventHandler = fn
	}
}

// Executor owns the conversation state of a run and drives the node loop:
// router decides, worker acts, control returns to the router, until the
// router emits the terminal sentinel or the step budget is exhausted.
// Nodes execute strictly sequentially within a run; independent runs may
// execute concurrently since they share no state.
type Executor struct {
	router       Router
	workers      map[string]Node
	stepLimit    int
	eventHandler EventHandler
	// steps counts node invocations across all runs, readable while runs
	// are in flight.
	steps *atomic.Int64
}

func newExecutor(router Router, workers map[string]Node, stepLimit int, options ...ExecutorOption) *Executor {
	ret := &Executor{
		router:    router,
		workers:   workers,
		stepLimit: stepLimit,
		steps:     atomic.NewInt64(0),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// StepLimit returns the configured step budget.
func (e *Executor) StepLimit() int {
	return e.stepLimit
}

// Steps returns the total number of node invocations across all runs.
func (e *Executor) Steps() int64 {
	return e.steps.Load()
}

func (e *Executor) emit(ev Event) {
	if fn := e.eventHandler; fn != nil {
		fn(ev)
	}
}

// Run seeds a new state with the user message and executes the graph.
func (e *Executor) Run(ctx context.Context, userMsg string) (*State, error) {
	return e.Execute(ctx, NewUserState(userMsg))
}

// Execute drives the node loop over a clone of seed until termination.
// On a step-budget abort the partial state is returned inside the error.
func (e *Executor) Execute(ctx context.Context, seed *State) (*State, error) {
	state := seed.Clone()
	runID := uuid.NewString()
	step := 0
	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		// Router turn.
		step++
		if step > e.stepLimit {
			return state, &StepBudgetError{Limit: e.stepLimit, State: state}
		}
		e.steps.Inc()
		decision, err := e.router.Decide(ctx, state)
		if err != nil {
			return state, &NodeError{Node: e.router.Name(), State: state, Err: err}
		}
		next := decision.Next
		if next != End {
			if _, ok := e.workers[next]; !ok {
				return state, &RoutingError{Router: e.router.Name(), Decision: next}
			}
		}
		state = state.Apply(&Delta{Next: next})
		e.emit(Event{RunID: runID, Step: step, Node: e.router.Name(), Next: state.Next()})
		if state.Next() == End {
			return state, nil
		}

		// Worker turn. Every worker unconditionally reports back to the
		// router, so the routing field is consumed here.
		step++
		if step > e.stepLimit {
			return state, &StepBudgetError{Limit: e.stepLimit, State: state}
		}
		e.steps.Inc()
		worker := e.workers[next]
		delta, err := worker.Run(ctx, state)
		if err != nil {
			return state, &NodeError{Node: worker.Name(), State: state, Err: err}
		}
		if delta == nil {
			delta = new(Delta)
		}
		// Workers have no routing authority.
		delta.Next = ""
		merged := state.Apply(delta)
		merged.next = ""
		state = merged
		e.emit(Event{RunID: runID, Step: step, Node: worker.Name(), NewMessages: append([]components.Message(nil), delta.Messages...), Next: state.Next()})
	}
}

// Stream executes the graph while emitting one Event per node invocation on
// the returned event channel. The channel is closed when the run ends; the
// outcome is delivered on the result channel.
func (e *Executor) Stream(ctx context.Context, seed *State) (<-chan Event, <-chan RunResult) {
	events := make(chan Event)
	result := make(chan RunResult, 1)
	go func() {
		defer close(events)
		defer close(result)
		handler := e.eventHandler
		streamed := *e
		streamed.eventHandler = func(ev Event) {
			if handler != nil {
				handler(ev)
			}
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
		state, err := streamed.Execute(ctx, seed)
		result <- RunResult{State: state, Err: err}
	}()
	return events, result
}
