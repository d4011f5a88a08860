package graph

import (
	"context"

	"github.com/bububa/graph-agents/agents"
	"github.com/bububa/graph-agents/components"
	"github.com/bububa/graph-agents/schema"
)

// Worker wraps an agent as a graph node scoped to one domain. Each
// invocation reads the conversation transcript and contributes exactly one
// new message attributed to the worker name. Tool failures inside the agent
// degrade into empty tool results; only a total agent failure is fatal and
// propagates to the executor.
type Worker struct {
	name  string
	agent agents.ChainableAgent
}

var _ Node = (*Worker)(nil)

// NewWorker returns a Worker node named name running the given agent.
func NewWorker(name string, agent agents.ChainableAgent) *Worker {
	return &Worker{
		name:  name,
		agent: agent,
	}
}

func (w *Worker) Name() string {
	return w.name
}

// Run performs one bounded reasoning step and returns the worker's single
// reply message.
func (w *Worker) Run(ctx context.Context, state *State) (*Delta, error) {
	input := schema.NewInput(state.Transcript())
	out, err := w.agent.RunForChain(ctx, input, new(components.ApiResponse))
	if err != nil {
		return nil, err
	}
	content, ok := out.(schema.Schema)
	if !ok {
		return nil, agents.ErrInvalidOutputSchema
	}
	msg := components.NewMessage(components.AssistantRole, content).SetSender(w.name)
	return &Delta{
		Messages: []components.Message{*msg},
	}, nil
}
