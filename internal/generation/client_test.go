package generation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func imageResponse(t *testing.T, w http.ResponseWriter, img []byte) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"data": []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString(img)}},
	})
	if err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestGenerateConditionedUsesEditsEndpoint(t *testing.T) {
	anchor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer anchor.Close()

	var gotPath string
	var gotBody map[string]any
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		imageResponse(t, w, []byte("png-bytes"))
	}))
	defer api.Close()

	c := NewClient(Config{BaseURL: api.URL, Model: "default-model"}, nil)
	res, err := c.Generate(context.Background(), Request{
		Prompt:         "new roof",
		ModelID:        "policy-model",
		AnchorImageURL: anchor.URL,
		Credential:     "sk-test",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotPath != "/images/edits" {
		t.Errorf("path = %q, want /images/edits for conditioned call", gotPath)
	}
	if gotBody["model"] != "policy-model" {
		t.Errorf("model = %v, want policy override", gotBody["model"])
	}
	if gotBody["image"] == "" || gotBody["image"] == nil {
		t.Error("conditioned request has no image payload")
	}
	if !res.Conditioned {
		t.Error("Conditioned = false")
	}
	if string(res.Image) != "png-bytes" {
		t.Errorf("Image = %q", res.Image)
	}
	if res.ContentType != "image/png" {
		t.Errorf("ContentType = %q", res.ContentType)
	}
}

func TestGenerateFallsBackWhenAnchorFetchFails(t *testing.T) {
	anchor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer anchor.Close()

	var gotPath string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		imageResponse(t, w, []byte("png"))
	}))
	defer api.Close()

	c := NewClient(Config{BaseURL: api.URL}, nil)
	res, err := c.Generate(context.Background(), Request{
		Prompt:         "new roof",
		AnchorImageURL: anchor.URL,
		Credential:     "sk-test",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotPath != "/images/generations" {
		t.Errorf("path = %q, want text-only fallback", gotPath)
	}
	if res.Conditioned {
		t.Error("Conditioned = true after fetch failure")
	}
}

func TestGenerateNoAnchor(t *testing.T) {
	var gotPath string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		imageResponse(t, w, []byte("png"))
	}))
	defer api.Close()

	c := NewClient(Config{BaseURL: api.URL}, nil)
	res, err := c.Generate(context.Background(), Request{Prompt: "p", Credential: "sk"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotPath != "/images/generations" || res.Conditioned {
		t.Errorf("path = %q, conditioned = %v", gotPath, res.Conditioned)
	}
}

func TestGenerateAPIError(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"billing hard limit"}`, http.StatusPaymentRequired)
	}))
	defer api.Close()

	c := NewClient(Config{BaseURL: api.URL}, nil)
	_, err := c.Generate(context.Background(), Request{Prompt: "p", Credential: "sk"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "402") {
		t.Errorf("err = %v, want status surfaced", err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer api.Close()

	c := NewClient(Config{BaseURL: api.URL}, nil)
	if _, err := c.Generate(context.Background(), Request{Prompt: "p"}); err == nil {
		t.Error("empty data accepted")
	}
}

func TestComposePrompt(t *testing.T) {
	got := composePrompt(Request{
		Prompt:           "new cedar fence",
		StylePreset:      "golden hour",
		NegativeGuidance: "people, text",
	})
	want := "new cedar fence Style: golden hour. Avoid: people, text."
	if got != want {
		t.Errorf("composePrompt = %q, want %q", got, want)
	}

	if got := composePrompt(Request{Prompt: "only"}); got != "only" {
		t.Errorf("composePrompt = %q", got)
	}
}
