package agents

import "errors"

var (
	// ErrMissingClient is returned when an agent runs without an instructor client.
	ErrMissingClient = errors.New("agents: missing instructor client")
	// ErrInvalidInputSchema is returned when a chained input does not match the agent input schema.
	ErrInvalidInputSchema = errors.New("agents: invalid input schema")
	// ErrInvalidOutputSchema is returned when a chained output does not match the agent output schema.
	ErrInvalidOutputSchema = errors.New("agents: invalid output schema")
)
