package graph

import (
	"fmt"
	"strings"

	"github.com/bububa/graph-agents/components"
	"github.com/bububa/graph-agents/schema"
)

// End is the terminal routing sentinel. A run whose routing field holds End
// has finished.
const End = "__end__"

// State is the conversation state threaded through every node invocation.
// The message log is append-only: node invocations contribute zero or more
// new messages which are concatenated to the end, never reordered or
// removed. The routing field names the node to execute next and defaults to
// End when unset.
type State struct {
	messages []components.Message
	next     string
}

// NewState returns a State seeded with the given messages.
func NewState(seed ...components.Message) *State {
	s := &State{
		messages: make([]components.Message, len(seed)),
	}
	copy(s.messages, seed)
	return s
}

// NewUserState returns a State seeded with a single user message.
func NewUserState(msg string) *State {
	return NewState(*components.NewMessage(components.UserRole, schema.String(msg)))
}

// Messages returns a copy of the message log. Mutating the returned slice
// never affects the state.
func (s *State) Messages() []components.Message {
	out := make([]components.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// MessageCount returns the length of the message log.
func (s *State) MessageCount() int {
	return len(s.messages)
}

// LastMessage returns the newest message, or nil for an empty log.
func (s *State) LastMessage() *components.Message {
	if len(s.messages) == 0 {
		return nil
	}
	msg := s.messages[len(s.messages)-1]
	return &msg
}

// Next returns the current routing value, defaulting to End when unset.
func (s *State) Next() string {
	if s.next == "" {
		return End
	}
	return s.next
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	out := NewState(s.messages...)
	out.next = s.next
	return out
}

// Transcript renders the message log as plain text for prompt assembly.
// Worker-produced messages are attributed to the worker name.
func (s *State) Transcript() string {
	var b strings.Builder
	for _, m := range s.messages {
		author := m.Sender()
		if author == "" {
			author = m.Role()
		}
		fmt.Fprintf(&b, "%s: %s\n", author, schema.Stringify(m.Content()))
	}
	return b.String()
}

// Delta is the partial output of one node invocation: new messages to
// concatenate and, optionally, a routing write.
type Delta struct {
	// Messages are appended to the state's message log in order.
	Messages []components.Message
	// Next overwrites the routing field when non-empty.
	Next string
}

// Apply merges a delta into the state using the two reducers and returns the
// merged state. It is pure: neither receiver nor delta is mutated, so
// replays are deterministic given identical node outputs.
func (s *State) Apply(delta *Delta) *State {
	out := new(State)
	out.messages = MergeMessages(s.messages, delta.Messages)
	out.next = MergeNext(s.next, delta.Next)
	return out
}

// MergeMessages is the message-log reducer: pure concatenation, existing
// prefix untouched, update order preserved.
func MergeMessages(existing, update []components.Message) []components.Message {
	out := make([]components.Message, 0, len(existing)+len(update))
	out = append(out, existing...)
	out = append(out, update...)
	return out
}

// MergeNext is the routing reducer: last write wins, an absent write keeps
// the existing value.
func MergeNext(existing, update string) string {
	if update == "" {
		return existing
	}
	return update
}
