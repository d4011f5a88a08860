package tools

import "context"

// Config is the base configuration shared by all tools
type Config struct {
	// title the default title of the tool
	title string
	// description the default description of the tool
	description string
	// hooks for tool call observability
	startHook func(context.Context, AnonymousTool, any)
	endHook   func(context.Context, AnonymousTool, any, any)
	errorHook func(context.Context, AnonymousTool, any, error)
}

func (c *Config) SetTitle(v string) {
	c.title = v
}

func (c Config) Title() string {
	return c.title
}

func (c *Config) SetDescription(v string) {
	c.description = v
}

func (c Config) Description() string {
	return c.description
}

func (c *Config) SetStartHook(fn func(context.Context, AnonymousTool, any)) {
	c.startHook = fn
}

func (c *Config) SetEndHook(fn func(context.Context, AnonymousTool, any, any)) {
	c.endHook = fn
}

func (c *Config) SetErrorHook(fn func(context.Context, AnonymousTool, any, error)) {
	c.errorHook = fn
}

// OnStart fires the start hook if registered
func (c Config) OnStart(ctx context.Context, t AnonymousTool, input any) {
	if fn := c.startHook; fn != nil {
		fn(ctx, t, input)
	}
}

// OnEnd fires the end hook if registered
func (c Config) OnEnd(ctx context.Context, t AnonymousTool, input any, output any) {
	if fn := c.endHook; fn != nil {
		fn(ctx, t, input, output)
	}
}

// OnError fires the error hook if registered
func (c Config) OnError(ctx context.Context, t AnonymousTool, input any, err error) {
	if fn := c.errorHook; fn != nil {
		fn(ctx, t, input, err)
	}
}
