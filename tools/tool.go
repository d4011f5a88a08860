package tools

import (
	"context"
)

type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	SetStartHook(fn func(context.Context, AnonymousTool, any))
	SetEndHook(fn func(context.Context, AnonymousTool, any, any))
	SetErrorHook(fn func(context.Context, AnonymousTool, any, error))
}

// Tool performs exactly one external call per Run.
// Implementations validate their input schema before doing any work and
// fail fast with a ValidationError on malformed parameters.
type Tool[I any, O any] interface {
	ITool
	Run(context.Context, *I, *O) error
}

// AnonymousTool is a tool invoked with untyped parameters, used by
// orchestration layers which select tools at runtime.
type AnonymousTool interface {
	ITool
	RunAnonymous(context.Context, any) (any, error)
}

// OrchestrationTool is a tool runnable with untyped input for agent orchestration.
type OrchestrationTool interface {
	RunOrchestration(context.Context, any) (any, error)
}
