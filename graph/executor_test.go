package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bububa/graph-agents/components"
	"github.com/bububa/graph-agents/schema"
)

// scriptedAgent is a deterministic stand-in for an LLM-backed worker agent.
type scriptedAgent struct {
	name  string
	reply func(in *schema.Input) (string, error)
}

func (a *scriptedAgent) Name() string {
	return a.name
}

func (a *scriptedAgent) RunForChain(ctx context.Context, input any, resp *components.ApiResponse) (any, error) {
	in, ok := input.(*schema.Input)
	if !ok {
		return nil, errors.New("unexpected input")
	}
	out, err := a.reply(in)
	if err != nil {
		return nil, err
	}
	return schema.NewOutput(out), nil
}

func echoWorker(name string) *Worker {
	return NewWorker(name, &scriptedAgent{
		name: name,
		reply: func(in *schema.Input) (string, error) {
			return name + " done", nil
		},
	})
}

// scriptRouter replays a fixed decision sequence, repeating the last entry.
func scriptRouter(decisions ...string) Router {
	idx := 0
	return NewRouterFunc(DefaultSupervisorName, func(ctx context.Context, state *State) (*Decision, error) {
		d := decisions[idx]
		if idx < len(decisions)-1 {
			idx++
		}
		return &Decision{Next: d}, nil
	})
}

func TestExecuteImmediateTermination(t *testing.T) {
	var routerCalls int
	router := NewRouterFunc(DefaultSupervisorName, func(ctx context.Context, state *State) (*Decision, error) {
		routerCalls++
		return &Decision{Next: End}, nil
	})
	exec, err := NewStateGraph().
		SetRouter(router).
		AddWorker(echoWorker("researcher")).
		Compile()
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	final, err := exec.Execute(context.Background(), NewUserState("hello"))
	if err != nil {
		t.Fatalf("Error executing graph: %v", err)
	}
	if routerCalls != 1 {
		t.Errorf("Expect exactly 1 router invocation, but got %d", routerCalls)
	}
	if final.MessageCount() != 1 {
		t.Errorf("Expect only the seed message, but got %d messages", final.MessageCount())
	}
	if final.Next() != End {
		t.Errorf("Expect terminal routing, but got %s", final.Next())
	}
}

func TestExecuteAppendOnly(t *testing.T) {
	var lengths []int
	exec, err := NewStateGraph().
		SetRouter(scriptRouter("researcher", "locator", End)).
		AddWorker(echoWorker("researcher")).
		AddWorker(echoWorker("locator")).
		Compile(WithEventHandler(func(ev Event) {
			lengths = append(lengths, len(ev.NewMessages))
		}))
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	final, err := exec.Execute(context.Background(), NewUserState("question"))
	if err != nil {
		t.Fatalf("Error executing graph: %v", err)
	}
	messages := final.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expect seed plus 2 worker messages, but got %d", len(messages))
	}
	if got := schema.Stringify(messages[0].Content()); got != "question" {
		t.Errorf("Expect seed prefix unchanged, but got %s", got)
	}
	if messages[1].Sender() != "researcher" || messages[2].Sender() != "locator" {
		t.Errorf("Expect worker attribution in order, but got %s, %s", messages[1].Sender(), messages[2].Sender())
	}
	// each step contributes zero or more new messages, never removes
	total := 0
	for _, l := range lengths {
		if l < 0 {
			t.Error("Expect non-negative message contribution")
		}
		total += l
	}
	if total != 2 {
		t.Errorf("Expect 2 contributed messages across events, but got %d", total)
	}
}

func TestExecuteRoutingViolation(t *testing.T) {
	exec, err := NewStateGraph().
		SetRouter(scriptRouter("ghost")).
		AddWorker(echoWorker("researcher")).
		Compile()
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	_, err = exec.Execute(context.Background(), NewUserState("question"))
	if !errors.Is(err, ErrRoutingViolation) {
		t.Fatalf("Expect routing violation, but got %v", err)
	}
	var re *RoutingError
	if !errors.As(err, &re) || re.Decision != "ghost" {
		t.Errorf("Expect offending decision in error, but got %v", err)
	}
}

func TestExecuteStepBudget(t *testing.T) {
	const limit = 5
	var invocations int
	router := NewRouterFunc(DefaultSupervisorName, func(ctx context.Context, state *State) (*Decision, error) {
		invocations++
		return &Decision{Next: "researcher"}, nil
	})
	worker := NewWorker("researcher", &scriptedAgent{
		name: "researcher",
		reply: func(in *schema.Input) (string, error) {
			invocations++
			return "still working", nil
		},
	})
	exec, err := NewStateGraph().
		SetRouter(router).
		AddWorker(worker).
		SetStepLimit(limit).
		Compile()
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	final, err := exec.Execute(context.Background(), NewUserState("question"))
	if !errors.Is(err, ErrStepBudget) {
		t.Fatalf("Expect step budget abort, but got %v", err)
	}
	if invocations != limit {
		t.Errorf("Expect abort exactly at %d node invocations, but got %d", limit, invocations)
	}
	var sbe *StepBudgetError
	if !errors.As(err, &sbe) {
		t.Fatal("Expect StepBudgetError")
	}
	if sbe.State == nil || sbe.State.MessageCount() == 0 {
		t.Error("Expect partial state attached for diagnostics")
	}
	if final == nil {
		t.Error("Expect partial state returned")
	}
}

func TestExecuteWorkerFailureFatal(t *testing.T) {
	worker := NewWorker("researcher", &scriptedAgent{
		name: "researcher",
		reply: func(in *schema.Input) (string, error) {
			return "", errors.New("llm quota exceeded")
		},
	})
	exec, err := NewStateGraph().
		SetRouter(scriptRouter("researcher", End)).
		AddWorker(worker).
		Compile()
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	_, err = exec.Execute(context.Background(), NewUserState("question"))
	var ne *NodeError
	if !errors.As(err, &ne) {
		t.Fatalf("Expect node error, but got %v", err)
	}
	if ne.Node != "researcher" {
		t.Errorf("Expect failing node researcher, but got %s", ne.Node)
	}
	if ne.State == nil {
		t.Error("Expect last known state attached")
	}
}

func TestStream(t *testing.T) {
	exec, err := NewStateGraph().
		SetRouter(scriptRouter("researcher", End)).
		AddWorker(echoWorker("researcher")).
		Compile()
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	events, result := exec.Stream(context.Background(), NewUserState("question"))
	var nodes []string
	var runIDs []string
	for ev := range events {
		nodes = append(nodes, ev.Node)
		runIDs = append(runIDs, ev.RunID)
	}
	res := <-result
	if res.Err != nil {
		t.Fatalf("Error executing stream: %v", res.Err)
	}
	want := fmt.Sprintf("%v", []string{DefaultSupervisorName, "researcher", DefaultSupervisorName})
	if got := fmt.Sprintf("%v", nodes); got != want {
		t.Errorf("Expect node sequence %s, but got %s", want, got)
	}
	if res.State.MessageCount() != 2 {
		t.Errorf("Expect final state with 2 messages, but got %d", res.State.MessageCount())
	}
	for i, id := range runIDs {
		if id == "" || id != runIDs[0] {
			t.Errorf("Expect every event to share one run id, but event %d has %q", i, id)
		}
	}
}

func TestCompileValidation(t *testing.T) {
	if _, err := NewStateGraph().Compile(); !errors.Is(err, ErrMissingRouter) {
		t.Errorf("Expect missing router error, but got %v", err)
	}
	_, err := NewStateGraph().
		SetRouter(scriptRouter(End)).
		AddWorker(echoWorker(End)).
		Compile()
	if err == nil {
		t.Error("Expect reserved worker name rejected")
	}
	_, err = NewStateGraph().
		SetRouter(scriptRouter(End)).
		AddWorker(echoWorker(DefaultSupervisorName)).
		Compile()
	if err == nil {
		t.Error("Expect router name collision rejected")
	}
}

func TestExecuteDoesNotMutateSeed(t *testing.T) {
	exec, err := NewStateGraph().
		SetRouter(scriptRouter("researcher", End)).
		AddWorker(echoWorker("researcher")).
		Compile()
	if err != nil {
		t.Fatalf("Error compiling graph: %v", err)
	}
	seed := NewUserState("question")
	if _, err := exec.Execute(context.Background(), seed); err != nil {
		t.Fatalf("Error executing graph: %v", err)
	}
	if seed.MessageCount() != 1 {
		t.Errorf("Expect seed untouched, but got %d messages", seed.MessageCount())
	}
}
