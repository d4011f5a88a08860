package graph

import (
	"fmt"
)

// StateGraph declares the fixed topology of a supervisor run: one router,
// a set of worker nodes, and the implicit edges router → worker → router.
// Workers never hand off to each other; every worker reports back to the
// router.
type StateGraph struct {
	router    Router
	workers   map[string]Node
	order     []string
	stepLimit int
}

// NewStateGraph returns an empty graph definition.
func NewStateGraph() *StateGraph {
	return &StateGraph{
		workers: make(map[string]Node),
	}
}

// SetRouter sets the graph's routing node.
func (g *StateGraph) SetRouter(r Router) *StateGraph {
	g.router = r
	return g
}

// AddWorker registers a worker node. Worker names must be unique and must
// not collide with the terminal sentinel or the router name.
func (g *StateGraph) AddWorker(node Node) *StateGraph {
	if _, exists := g.workers[node.Name()]; !exists {
		g.order = append(g.order, node.Name())
	}
	g.workers[node.Name()] = node
	return g
}

// SetStepLimit overrides the default step budget.
func (g *StateGraph) SetStepLimit(limit int) *StateGraph {
	g.stepLimit = limit
	return g
}

// WorkerNames returns registered worker names in registration order.
func (g *StateGraph) WorkerNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Compile validates the topology and returns an Executor.
func (g *StateGraph) Compile(options ...ExecutorOption) (*Executor, error) {
	if g.router == nil {
		return nil, ErrMissingRouter
	}
	for name := range g.workers {
		if name == End {
			return nil, fmt.Errorf("graph: worker name %q is reserved", End)
		}
		if name == g.router.Name() {
			return nil, fmt.Errorf("graph: worker name %q collides with router", name)
		}
	}
	limit := g.stepLimit
	if limit <= 0 {
		limit = DefaultStepLimit
	}
	workers := make(map[string]Node, len(g.workers))
	for name, node := range g.workers {
		workers[name] = node
	}
	return newExecutor(g.router, workers, limit, options...), nil
}
