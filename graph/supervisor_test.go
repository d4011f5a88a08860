package graph

import (
	"strings"
	"testing"
)

func TestSupervisorPrompt(t *testing.T) {
	sup := NewSupervisor([]string{"researcher", "tripadvisor"})
	prompt := sup.SystemPrompt()
	for _, member := range []string{"researcher", "tripadvisor"} {
		if !strings.Contains(prompt, member) {
			t.Errorf("Expect prompt to declare member %s", member)
		}
	}
	if !strings.Contains(prompt, FinishToken) {
		t.Error("Expect prompt to declare the finish token")
	}
}

func TestSupervisorMembersCopy(t *testing.T) {
	sup := NewSupervisor([]string{"researcher"})
	members := sup.Members()
	members[0] = "mutated"
	if sup.Members()[0] != "researcher" {
		t.Error("Expect Members to return an independent copy")
	}
}

func TestNormalizeDecision(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"FINISH", End},
		{"finish", End},
		{" FINISH ", End},
		{"researcher", "researcher"},
		{" researcher", "researcher"},
	}
	for _, c := range cases {
		d := &Decision{Next: c.in}
		normalizeDecision(d)
		if d.Next != c.want {
			t.Errorf("Expect %q normalized to %q, but got %q", c.in, c.want, d.Next)
		}
	}
}
