package graph

import "context"

// Node is a unit of execution in the workflow graph. A node reads the
// current state and returns a partial update; it never mutates the state it
// receives and holds no reference to it between invocations.
type Node interface {
	Name() string
	Run(ctx context.Context, state *State) (*Delta, error)
}

// NodeFunc adapts a function to the Node interface.
type NodeFunc struct {
	name string
	fn   func(ctx context.Context, state *State) (*Delta, error)
}

func NewNodeFunc(name string, fn func(ctx context.Context, state *State) (*Delta, error)) *NodeFunc {
	return &NodeFunc{
		name: name,
		fn:   fn,
	}
}

func (n *NodeFunc) Name() string {
	return n.name
}

func (n *NodeFunc) Run(ctx context.Context, state *State) (*Delta, error) {
	return n.fn(ctx, state)
}
