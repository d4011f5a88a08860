package orchestration

import (
	"context"
	"fmt"

	"github.com/bububa/graph-agents/tools"
)

// ToolSelector returns a Tool and its parameters based on the input
type ToolSelector[I any] func(req *I) (tools.OrchestrationTool, any, error)

// Tool is an orchestration tool which routes a typed request to one of
// several underlying tools through a selector.
type Tool[I any] struct {
	tools.Config
	selector ToolSelector[I]
}

func New[I any](selector ToolSelector[I], opts ...tools.Option) *Tool[I] {
	ret := new(Tool[I])
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("OrchestrationTool")
	}
	ret.selector = selector
	return ret
}

// RunOrchestration returns a tool result based on input for orchestration
func (t *Tool[I]) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, &tools.ValidationError{Tool: t.Title(), Err: fmt.Errorf("unexpected input type %T", input)}
	}
	tool, params, err := t.selector(in)
	if err != nil {
		return nil, err
	}
	return tool.RunOrchestration(ctx, params)
}
