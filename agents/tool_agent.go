package agents

import (
	"context"

	"github.com/bububa/graph-agents/components"
	"github.com/bububa/graph-agents/schema"
	"github.com/bububa/graph-agents/tools"
)

// ToolAgent represents an agent with a single tool round-trip per run:
// the start agent plans the tool parameters, the tool executes exactly one
// call, and the end agent produces the final reply from the tool result.
// At most one tool invocation happens per Run, which bounds each reasoning
// step by construction.
type ToolAgent[I schema.Schema, T schema.Schema, O schema.Schema] struct {
	start *Agent[I, T]
	end   *Agent[I, O]
	tool  tools.OrchestrationTool
	name  string
}

// NewToolAgent returns a new ToolAgent instance
func NewToolAgent[I schema.Schema, T schema.Schema, O schema.Schema](options ...Option) *ToolAgent[I, T, O] {
	ret := &ToolAgent[I, T, O]{
		start: NewAgent[I, T](options...),
		end:   NewAgent[I, O](options...),
	}
	ret.name = ret.start.Name()
	return ret
}

func (t *ToolAgent[I, T, O]) SetTool(tool tools.OrchestrationTool) *ToolAgent[I, T, O] {
	t.tool = tool
	return t
}

func (t *ToolAgent[I, T, O]) Name() string {
	return t.name
}

func (t *ToolAgent[I, T, O]) SetName(name string) {
	t.name = name
}

func (t *ToolAgent[I, T, O]) ResetMemory() {
	t.start.ResetMemory()
	t.end.ResetMemory()
}

// Run runs the chat agent with the given user input synchronously.
// A failed tool call degrades into an empty result note for the end agent;
// it never fails the run.
func (t *ToolAgent[I, T, O]) Run(ctx context.Context, userInput *I, output *O, apiResp *components.ApiResponse) error {
	toolParams := new(T)
	if err := t.start.Run(ctx, userInput, toolParams, apiResp); err != nil {
		return err
	}
	if t.tool != nil {
		if toolResult, err := t.tool.RunOrchestration(ctx, toolParams); err != nil {
			t.end.NewMessage(components.SystemRole, schema.String("The tool produced no usable data."))
		} else if outO, ok := toolResult.(schema.Schema); !ok {
			return ErrInvalidOutputSchema
		} else {
			t.end.NewMessage(components.SystemRole, outO)
		}
	}
	if err := t.end.Run(ctx, userInput, output, apiResp); err != nil {
		return err
	}
	return nil
}

// RunForChain runs the chat agent with the given user input for chain.
func (t *ToolAgent[I, T, O]) RunForChain(ctx context.Context, userInput any, apiResp *components.ApiResponse) (any, error) {
	in, ok := userInput.(*I)
	if !ok {
		return nil, ErrInvalidInputSchema
	}
	out := new(O)
	if err := t.Run(ctx, in, out, apiResp); err != nil {
		return nil, err
	}
	return out, nil
}
