package schema

import (
	"strings"
	"testing"
)

func TestStringifyString(t *testing.T) {
	s := String("what is the hotel's address?")
	if got := Stringify(s); got != "what is the hotel's address?" {
		t.Errorf("Expect raw string passthrough, but got %s", got)
	}
}

func TestStringifyStruct(t *testing.T) {
	in := NewInput("locationId: 229968, what is the address?")
	got := Stringify(in)
	if !strings.Contains(got, `"chat_message"`) {
		t.Errorf("Expect JSON encoded schema, but got %s", got)
	}
	if !strings.Contains(got, "229968") {
		t.Errorf("Expect message content in JSON, but got %s", got)
	}
}

func TestBaseAttachement(t *testing.T) {
	var b Base
	if b.Attachement() != nil {
		t.Error("Expect nil attachement on empty base")
	}
	att := &Attachement{ImageURLs: []string{"https://example.com/a.png"}}
	b.SetAttachement(att)
	if got := b.Attachement(); got == nil || len(got.ImageURLs) != 1 {
		t.Error("Expect attachement to round-trip through base schema")
	}
}
