package tripadvisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bububa/graph-agents/tools"
)

func TestLocationDetails(t *testing.T) {
	const apiKey = "test-key"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(DefaultAPIKeyHeader); got != apiKey {
			t.Errorf("Expect api key header %s, but got %s", apiKey, got)
		}
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("Expect user agent %s, but got %s", DefaultUserAgent, got)
		}
		if r.URL.Path != "/229968" {
			t.Errorf("Expect path /229968, but got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"address": "123 Main St"})
	}))
	defer srv.Close()

	tool := New(WithBaseURL(srv.URL), WithAPIKey(apiKey))
	output := new(Output)
	if err := tool.Run(context.Background(), NewInput("229968"), output); err != nil {
		t.Fatalf("Error running LocationDetails: %v", err)
	}
	if got := output.Details["address"]; got != "123 Main St" {
		t.Errorf("Expect address 123 Main St, but got %v", got)
	}
}

func TestLocationDetailsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var hookErr error
	tool := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	tool.SetErrorHook(func(ctx context.Context, tl tools.AnonymousTool, input any, err error) {
		hookErr = err
	})
	output := new(Output)
	if err := tool.Run(context.Background(), NewInput("229968"), output); err != nil {
		t.Fatalf("Expect degraded empty output, but got error: %v", err)
	}
	if len(output.Details) != 0 {
		t.Errorf("Expect empty details on server error, but got %v", output.Details)
	}
	if hookErr == nil {
		t.Error("Expect transport failure reported through error hook")
	}
}

func TestLocationDetailsTransportError(t *testing.T) {
	// port 1 is never listening
	tool := New(WithBaseURL("http://127.0.0.1:1"), WithAPIKey("k"))
	output := new(Output)
	if err := tool.Run(context.Background(), NewInput("229968"), output); err != nil {
		t.Fatalf("Expect degraded empty output, but got error: %v", err)
	}
	if len(output.Details) != 0 {
		t.Errorf("Expect empty details on transport error, but got %v", output.Details)
	}
}

func TestLocationDetailsMissingID(t *testing.T) {
	tool := New(WithBaseURL("http://127.0.0.1:1"), WithAPIKey("k"))
	output := new(Output)
	err := tool.Run(context.Background(), &Input{}, output)
	if err == nil {
		t.Fatal("Expect validation error for missing location id")
	}
	if !tools.IsValidationError(err) {
		t.Errorf("Expect ValidationError, but got %v", err)
	}
}
