package artifact

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStoreUploadsAndReturnsPublicURL(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewHTTPStore(Config{
		UploadBaseURL: srv.URL,
		PublicBaseURL: "https://cdn.example.com",
	}, nil)

	url, err := s.Store(context.Background(), []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %q", gotMethod)
	}
	if !strings.HasPrefix(gotPath, "/renders/") || !strings.HasSuffix(gotPath, ".png") {
		t.Errorf("path = %q, want /renders/<uuid>.png", gotPath)
	}
	if gotContentType != "image/png" {
		t.Errorf("content type = %q", gotContentType)
	}
	if string(gotBody) != "png-bytes" {
		t.Errorf("body = %q", gotBody)
	}
	if !strings.HasPrefix(url, "https://cdn.example.com/renders/") {
		t.Errorf("url = %q, want public base", url)
	}
	if !strings.HasSuffix(url, gotPath[len("/"):]) && !strings.HasSuffix(url, gotPath) {
		t.Errorf("url %q does not end with uploaded key %q", url, gotPath)
	}
}

func TestStoreRejectedUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewHTTPStore(Config{UploadBaseURL: srv.URL, PublicBaseURL: "https://cdn.example.com"}, nil)
	if _, err := s.Store(context.Background(), []byte("x"), "image/png"); err == nil {
		t.Error("403 upload accepted")
	}
}

func TestExtensionFor(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":               ".jpg",
		"image/webp":               ".webp",
		"image/png":                ".png",
		"application/octet-stream": ".png",
	}
	for ct, want := range cases {
		if got := extensionFor(ct); got != want {
			t.Errorf("extensionFor(%q) = %q, want %q", ct, got, want)
		}
	}
}
