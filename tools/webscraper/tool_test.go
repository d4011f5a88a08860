package webscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bububa/graph-agents/tools"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title>Grand Hotel</title>
<meta name="description" content="A fine hotel." />
<meta property="og:site_name" content="GrandHotel" />
</head>
<body>
<nav>ignore me</nav>
<main><h1>Grand Hotel</h1><p>Located at 123 Main St.</p></main>
<footer>ignore me too</footer>
</body>
</html>`

func TestWebscraper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	tool := New()
	output := new(Output)
	if err := tool.Run(context.Background(), NewInput(srv.URL, false), output); err != nil {
		t.Fatalf("Error running Webscraper: %v", err)
	}
	if !strings.Contains(output.Content, "Grand Hotel") {
		t.Errorf("Expect markdown to contain heading, but got %s", output.Content)
	}
	if !strings.Contains(output.Content, "123 Main St") {
		t.Errorf("Expect markdown to contain body text, but got %s", output.Content)
	}
	if strings.Contains(output.Content, "ignore me") {
		t.Errorf("Expect nav/footer stripped, but got %s", output.Content)
	}
	if output.Metadata == nil || output.Metadata.Description != "A fine hotel." {
		t.Errorf("Expect description metadata, but got %+v", output.Metadata)
	}
}

func TestWebscraperInvalidURL(t *testing.T) {
	tool := New()
	output := new(Output)
	err := tool.Run(context.Background(), NewInput("not a url", false), output)
	if err == nil {
		t.Fatal("Expect validation error for malformed url")
	}
	if !tools.IsValidationError(err) {
		t.Errorf("Expect ValidationError, but got %v", err)
	}
}
