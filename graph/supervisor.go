package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/graph-agents/agents"
	"github.com/bububa/graph-agents/components/systemprompt/cot"
	"github.com/bububa/graph-agents/schema"
)

// DefaultSupervisorName is the router node name used when none is set.
const DefaultSupervisorName = "supervisor"

// Supervisor is an LLM-backed Router. The language model is constrained to
// a single-field structured output whose value must be one of the declared
// member names or FinishToken; the executor enforces the closed set on top
// of the schema constraint.
type Supervisor struct {
	name    string
	members []string
	agent   *agents.Agent[schema.Input, Decision]
}

var _ Router = (*Supervisor)(nil)

// NewSupervisor returns a Supervisor coordinating the given members.
// Options configure the underlying agent (client, model, temperature).
func NewSupervisor(members []string, options ...agents.Option) *Supervisor {
	ret := &Supervisor{
		name:    DefaultSupervisorName,
		members: members,
	}
	choices := make([]string, 0, len(members)+1)
	choices = append(choices, members...)
	choices = append(choices, FinishToken)
	generator := cot.New(
		cot.WithBackground([]string{
			"- You are a supervisor coordinating a conversation between the user and the following workers: " + strings.Join(members, ", ") + ".",
			"- Each worker performs its task and responds with its result.",
		}),
		cot.WithSteps([]string{
			"- Read the full conversation so far.",
			"- Decide which worker should act next, or whether the user's request is fully answered.",
		}),
		cot.WithOutputInstructs([]string{
			fmt.Sprintf("- Respond with exactly one of: %s.", strings.Join(choices, ", ")),
			fmt.Sprintf("- Respond with %s when the user's request is fully answered.", FinishToken),
		}),
	)
	options = append(options, agents.WithSystemPromptGenerator(generator), agents.WithName(ret.name))
	ret.agent = agents.NewAgent[schema.Input, Decision](options...)
	return ret
}

func (s *Supervisor) Name() string {
	return s.name
}

func (s *Supervisor) SetName(name string) {
	s.name = name
}

// Members returns the declared worker names.
func (s *Supervisor) Members() []string {
	out := make([]string, len(s.members))
	copy(out, s.members)
	return out
}

// SystemPrompt returns the supervisor's routing prompt.
func (s *Supervisor) SystemPrompt() string {
	return s.agent.SystemPrompt()
}

// Decide invokes the language model over the full conversation transcript
// and returns its routing decision. FinishToken maps to the End sentinel.
// The supervisor keeps no memory between decisions: every decision is a
// function of the transcript alone.
func (s *Supervisor) Decide(ctx context.Context, state *State) (*Decision, error) {
	s.agent.ResetMemory()
	input := schema.NewInput(state.Transcript())
	out := new(Decision)
	if err := s.agent.Run(ctx, input, out, nil); err != nil {
		return nil, err
	}
	normalizeDecision(out)
	return out, nil
}

// normalizeDecision maps the model-facing finish token onto the terminal
// sentinel and strips surrounding whitespace.
func normalizeDecision(d *Decision) {
	d.Next = strings.TrimSpace(d.Next)
	if strings.EqualFold(d.Next, FinishToken) {
		d.Next = End
	}
}
