package components

import (
	"fmt"
	"testing"

	"github.com/bububa/graph-agents/schema"
)

func TestMemoryOverflow(t *testing.T) {
	mem := NewMemory(3)
	mem.NewTurn()
	for i := 0; i < 5; i++ {
		mem.NewMessage(UserRole, schema.String(fmt.Sprintf("msg-%d", i)))
	}
	if count := mem.MessageCount(); count != 3 {
		t.Fatalf("Expect 3 messages, but got %d", count)
	}
	history := mem.History()
	if got := schema.Stringify(history[0].Content()); got != "msg-2" {
		t.Errorf("Expect oldest surviving message msg-2, but got %s", got)
	}
}

func TestMemoryTokenBudget(t *testing.T) {
	mem := NewMemory(0)
	mem.SetMaxTokens(6, nil)
	mem.NewTurn()
	mem.NewMessage(UserRole, schema.String("one two three four"))
	mem.NewMessage(AssistantRole, schema.String("five six seven"))
	mem.NewMessage(UserRole, schema.String("eight nine"))
	history := mem.History()
	if len(history) != 2 {
		t.Fatalf("Expect 2 messages within token budget, but got %d", len(history))
	}
	if got := schema.Stringify(history[len(history)-1].Content()); got != "eight nine" {
		t.Errorf("Expect latest message kept, but got %s", got)
	}
}

func TestMemoryDeleteTurn(t *testing.T) {
	mem := NewMemory(10)
	mem.NewTurn()
	first := mem.TurnID()
	mem.NewMessage(UserRole, schema.String("hello"))
	mem.NewTurn()
	mem.NewMessage(AssistantRole, schema.String("hi"))
	if err := mem.DeleteTurn(first); err != nil {
		t.Fatalf("Error deleting turn: %v", err)
	}
	if count := mem.MessageCount(); count != 1 {
		t.Errorf("Expect 1 message after turn deletion, but got %d", count)
	}
	if err := mem.DeleteTurn("missing"); err == nil {
		t.Error("Expect error deleting unknown turn")
	}
}

func TestMemoryCopy(t *testing.T) {
	src := NewMemory(5)
	src.NewTurn()
	src.NewMessage(UserRole, schema.String("seed"))
	dst := NewMemory(0)
	dst.Copy(src)
	if dst.MessageCount() != 1 {
		t.Errorf("Expect copied history, but got %d messages", dst.MessageCount())
	}
	if dst.TurnID() != src.TurnID() {
		t.Error("Expect copied turn ID")
	}
}
