package graph

import (
	"context"

	"github.com/bububa/graph-agents/schema"
)

// FinishToken is the value a router model emits to end the run. It maps to
// the End sentinel.
const FinishToken = "FINISH"

// Decision is the router's structured output: exactly one value out of the
// closed set of worker names plus FinishToken. It is parsed as a single
// enumerated field, never free text.
type Decision struct {
	schema.Base
	// Next is the name of the worker to act next, or FINISH when the
	// conversation is complete.
	Next string `json:"next" jsonschema:"title=next,description=The name of the worker to act next or FINISH when the request is fully answered." validate:"required"`
}

func (d Decision) String() string {
	return d.Next
}

// Router decides which node executes next from the current state.
type Router interface {
	Name() string
	Decide(ctx context.Context, state *State) (*Decision, error)
}

// RouterFunc adapts a function to the Router interface.
type RouterFunc struct {
	name string
	fn   func(ctx context.Context, state *State) (*Decision, error)
}

func NewRouterFunc(name string, fn func(ctx context.Context, state *State) (*Decision, error)) *RouterFunc {
	return &RouterFunc{
		name: name,
		fn:   fn,
	}
}

func (r *RouterFunc) Name() string {
	return r.name
}

func (r *RouterFunc) Decide(ctx context.Context, state *State) (*Decision, error) {
	return r.fn(ctx, state)
}
