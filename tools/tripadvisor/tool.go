package tripadvisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/bububa/graph-agents/schema"
	"github.com/bububa/graph-agents/tools"
)

const (
	// DefaultAPIKeyHeader is the header carrying the location API key.
	DefaultAPIKeyHeader = "X-TripAdvisor-API-Key"
	// DefaultUserAgent is the fixed client identifier sent with every request.
	DefaultUserAgent = "graph-agents"
)

// Input Schema for the location details tool. Use this tool to look up
// address, contact and rating information for a known location ID.
type Input struct {
	schema.Base
	// LocationID is the unique identifier of the location to look up.
	LocationID string `json:"location_id" jsonschema:"title=location_id,description=The unique identifier of the location to look up." validate:"required"`
}

func NewInput(locationID string) *Input {
	return &Input{
		LocationID: locationID,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output is the opaque location details payload. An empty Details map means
// the tool produced nothing usable; callers must not treat that as fatal.
type Output struct {
	schema.Base
	// Details is the raw location details payload.
	Details map[string]any `json:"details,omitempty" jsonschema:"title=details,description=The raw location details payload."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Title implements systemprompt.ContextProvider
func (s Output) Title() string {
	return "Location Details"
}

// Info implements systemprompt.ContextProvider
func (s Output) Info() string {
	if len(s.Details) == 0 {
		return "no location data found"
	}
	return s.String()
}

type Config struct {
	tools.Config
	baseURL      string
	apiKey       string
	apiKeyHeader string
	userAgent    string
	httpClient   *http.Client
}

// LocationDetails looks up details for one location ID per call.
// The call is best-effort: any transport failure or non-2xx response is
// logged and degraded into an empty Output instead of an error, so all the
// caller ever observes is "no data".
type LocationDetails struct {
	Config
}

var (
	_ tools.Tool[Input, Output] = (*LocationDetails)(nil)
	_ tools.AnonymousTool       = (*LocationDetails)(nil)
	_ tools.OrchestrationTool   = (*LocationDetails)(nil)
)

func New(opts ...Option) *LocationDetails {
	ret := new(LocationDetails)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("LocationDetailsTool")
	}
	if ret.apiKeyHeader == "" {
		ret.apiKeyHeader = DefaultAPIKeyHeader
	}
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run executes a single location lookup. Only input validation can fail it.
func (t *LocationDetails) Run(ctx context.Context, input *Input, output *Output) error {
	t.OnStart(ctx, t, input)
	if err := tools.ValidateInput(t.Title(), input); err != nil {
		t.OnError(ctx, t, input, err)
		return err
	}
	details, err := t.fetchDetails(ctx, input.LocationID)
	if err != nil {
		log.Printf("%s: location %s lookup failed: %v", t.Title(), input.LocationID, err)
		t.OnError(ctx, t, input, err)
		output.Details = nil
		return nil
	}
	output.Details = details
	t.OnEnd(ctx, t, input, output)
	return nil
}

// RunAnonymous implements tools.AnonymousTool
func (t *LocationDetails) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, &tools.ValidationError{Tool: t.Title(), Err: fmt.Errorf("unexpected input type %T", input)}
	}
	out := new(Output)
	if err := t.Run(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *LocationDetails) RunOrchestration(ctx context.Context, input any) (any, error) {
	return t.RunAnonymous(ctx, input)
}

func (t *LocationDetails) fetchDetails(ctx context.Context, locationID string) (map[string]any, error) {
	detailsURL := fmt.Sprintf("%s/%s", t.baseURL, locationID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, detailsURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(t.apiKeyHeader, t.apiKey)
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying location api: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("non-2xx response from location api: %d", httpResp.StatusCode)
	}

	var details map[string]any
	if err := json.NewDecoder(httpResp.Body).Decode(&details); err != nil {
		return nil, err
	}
	return details, nil
}
