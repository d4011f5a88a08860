package graph

import (
	"testing"

	"github.com/bububa/graph-agents/components"
	"github.com/bububa/graph-agents/schema"
)

func msg(role components.MessageRole, content string) components.Message {
	return *components.NewMessage(role, schema.String(content))
}

func TestMergeMessagesAppendOnly(t *testing.T) {
	existing := []components.Message{msg(components.UserRole, "a"), msg(components.AssistantRole, "b")}
	update := []components.Message{msg(components.AssistantRole, "c")}
	merged := MergeMessages(existing, update)
	if len(merged) != 3 {
		t.Fatalf("Expect 3 messages, but got %d", len(merged))
	}
	for i, m := range existing {
		if schema.Stringify(merged[i].Content()) != schema.Stringify(m.Content()) {
			t.Errorf("Expect prefix unchanged at %d", i)
		}
	}
	if got := schema.Stringify(merged[2].Content()); got != "c" {
		t.Errorf("Expect appended message c, but got %s", got)
	}
	// the reducer must not alias the existing slice
	merged[0] = msg(components.SystemRole, "mutated")
	if got := schema.Stringify(existing[0].Content()); got != "a" {
		t.Error("Expect reducer output independent of input slice")
	}
}

func TestMergeMessagesEmptyUpdate(t *testing.T) {
	existing := []components.Message{msg(components.UserRole, "a")}
	merged := MergeMessages(existing, nil)
	if len(merged) != 1 {
		t.Fatalf("Expect 1 message, but got %d", len(merged))
	}
}

func TestMergeNext(t *testing.T) {
	if got := MergeNext("", ""); got != "" {
		t.Errorf("Expect empty, but got %s", got)
	}
	if got := MergeNext("researcher", ""); got != "researcher" {
		t.Errorf("Expect absent write to keep existing, but got %s", got)
	}
	if got := MergeNext("researcher", End); got != End {
		t.Errorf("Expect last write wins, but got %s", got)
	}
}

func TestStateNextDefaultsToEnd(t *testing.T) {
	s := NewState()
	if got := s.Next(); got != End {
		t.Errorf("Expect unset next to default to terminal, but got %s", got)
	}
}

func TestStateApplyPure(t *testing.T) {
	s := NewState(msg(components.UserRole, "seed"))
	delta := &Delta{Messages: []components.Message{msg(components.AssistantRole, "reply")}, Next: "researcher"}
	merged := s.Apply(delta)
	if s.MessageCount() != 1 {
		t.Error("Expect original state untouched")
	}
	if s.Next() != End {
		t.Error("Expect original routing untouched")
	}
	if merged.MessageCount() != 2 {
		t.Errorf("Expect merged state with 2 messages, but got %d", merged.MessageCount())
	}
	if merged.Next() != "researcher" {
		t.Errorf("Expect merged next researcher, but got %s", merged.Next())
	}
}

func TestStateTranscript(t *testing.T) {
	reply := *components.NewMessage(components.AssistantRole, schema.String("hi")).SetSender("researcher")
	s := NewState(msg(components.UserRole, "hello"), reply)
	transcript := s.Transcript()
	want := "user: hello\nresearcher: hi\n"
	if transcript != want {
		t.Errorf("Expect transcript %q, but got %q", want, transcript)
	}
}

func TestStateMessagesCopy(t *testing.T) {
	s := NewState(msg(components.UserRole, "seed"))
	got := s.Messages()
	got[0] = msg(components.SystemRole, "mutated")
	if content := schema.Stringify(s.Messages()[0].Content()); content != "seed" {
		t.Error("Expect Messages to return an independent copy")
	}
}
