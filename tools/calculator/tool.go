package calculator

import (
	"context"
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/bububa/graph-agents/schema"
	"github.com/bububa/graph-agents/tools"
)

// Input Tool for performing calculations. Supports basic arithmetic operations
// like addition, subtraction, multiplication, and division, as well as
// exponentiation and common mathematical constants.
// Use this tool to evaluate mathematical expressions.
type Input struct {
	schema.Base
	// Expression Mathematical expression to evaluate. For example, '2 + 2'.
	Expression string `json:"expression" jsonschema:"title=expression,description=Mathematical expression to evaluate. For example, '2 + 2'." validate:"required"`
	// Params represents expression's parameters
	Params map[string]interface{} `json:"params,omitempty" jsonschema:"title=params,description=Parameters for the expression."`
}

func NewInput(exp string, params map[string]interface{}) *Input {
	return &Input{
		Expression: exp,
		Params:     params,
	}
}

// Output Schema for the output of the CalculatorTool
type Output struct {
	schema.Base
	// Result Result of the calculation
	Result interface{} `json:"result,omitempty" jsonschema:"title=result,description=Result of the calculation."`
}

func NewOutput(result interface{}) *Output {
	return &Output{
		Result: result,
	}
}

type Tool struct {
	tools.Config
}

var (
	_ tools.Tool[Input, Output] = (*Tool)(nil)
	_ tools.AnonymousTool       = (*Tool)(nil)
	_ tools.OrchestrationTool   = (*Tool)(nil)
)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("CalculatorTool")
	}
	return ret
}

// Run executes the CalculatorTool with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	t.OnStart(ctx, t, input)
	if err := tools.ValidateInput(t.Title(), input); err != nil {
		t.OnError(ctx, t, input, err)
		return err
	}
	exp, err := govaluate.NewEvaluableExpression(input.Expression)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return err
	}
	params := make(map[string]interface{}, len(input.Params)+len(constParams))
	for k, v := range input.Params {
		params[k] = v
	}
	for k, v := range constParams {
		if _, ok := params[k]; ok {
			continue
		}
		params[k] = v
	}
	result, err := exp.Evaluate(params)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return err
	}
	output.Result = result
	t.OnEnd(ctx, t, input, output)
	return nil
}

// RunAnonymous implements tools.AnonymousTool
func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, &tools.ValidationError{Tool: t.Title(), Err: fmt.Errorf("unexpected input type %T", input)}
	}
	out := new(Output)
	if err := t.Run(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *Tool) RunOrchestration(ctx context.Context, input any) (any, error) {
	return t.RunAnonymous(ctx, input)
}
