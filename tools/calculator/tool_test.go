package calculator

import (
	"context"
	"fmt"
	"testing"
)

func Test(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret := new(Output)
	if err := tool.Run(ctx, NewInput("2+2", nil), ret); err != nil {
		t.Error(err)
	}
	switch value := ret.Result.(type) {
	case float64:
		if int(value) != 4 {
			t.Errorf("expecting 4, but got %.2f", value)
		}
	default:
		t.Errorf("expecting float64, but got %T", value)
	}
}

func TestConstants(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret := new(Output)
	if err := tool.Run(ctx, NewInput("pi * 2", nil), ret); err != nil {
		t.Error(err)
	}
	if v, ok := ret.Result.(float64); !ok || v < 6.28 || v > 6.29 {
		t.Errorf("expecting 2*pi, but got %v", ret.Result)
	}
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret := new(Output)
	tool.Run(ctx, NewInput("2+2", nil), ret)
	fmt.Println(ret.Result)
	// Output:
	// 4
}
