package venice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestGenerateSendsBearerAndPayload tests the request shape of a generation call.
func TestGenerateSendsBearerAndPayload(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody GenerateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if r.URL.Path != "/image/generate" {
			t.Errorf("path = %q, want /image/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images": ["http://example.com/cat.png"]}`))
	}))
	defer server.Close()

	client := New(server.URL, "sk-test", 5*time.Second, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Model:  "fluently-xl",
		Prompt: "a cat",
		Width:  512,
		Height: 768,
		Steps:  80,
		Seed:   123,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want Bearer sk-test", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody.Prompt != "a cat" || gotBody.Width != 512 || gotBody.Seed != 123 {
		t.Errorf("request body = %+v", gotBody)
	}
	if len(resp.Images) != 1 || resp.Images[0] != "http://example.com/cat.png" {
		t.Errorf("Images = %v", resp.Images)
	}
}

// TestGenerateNonSuccessStatus tests that a non-2xx response is an error.
func TestGenerateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(server.URL, "sk-test", 5*time.Second, nil)

	if _, err := client.Generate(context.Background(), GenerateRequest{}); err == nil {
		t.Error("Expected error for non-2xx response")
	}
}

// TestGenerateMalformedResponse tests that a body that is not JSON is an error.
func TestGenerateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(server.URL, "sk-test", 5*time.Second, nil)

	if _, err := client.Generate(context.Background(), GenerateRequest{}); err == nil {
		t.Error("Expected error for malformed response body")
	}
}

// TestGenerateTimeout tests that a slow server trips the configured timeout.
func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"images": []}`))
	}))
	defer server.Close()

	client := New(server.URL, "sk-test", 50*time.Millisecond, nil)

	if _, err := client.Generate(context.Background(), GenerateRequest{}); err == nil {
		t.Error("Expected timeout error")
	}
}

// TestListModels tests the models listing call.
func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("path = %q, want /models", r.URL.Path)
		}
		if r.URL.Query().Get("type") != "image" {
			t.Errorf("type query = %q, want image", r.URL.Query().Get("type"))
		}
		w.Write([]byte(`{"data": [{"id": "fluently-xl", "type": "image"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, "sk-test", 5*time.Second, nil)

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 1 || models[0].ID != "fluently-xl" {
		t.Errorf("models = %+v", models)
	}
}
