package generation

import "context"

// Request is one render attempt. Credential is resolved per job by the key
// policy, never stored on the client.
type Request struct {
	Prompt           string
	ModelID          string
	StylePreset      string
	NegativeGuidance string
	AnchorImageURL   string
	Credential       string
}

// Result is the generated image.
type Result struct {
	Image       []byte
	ContentType string
	// Conditioned reports whether the anchor photo made it into the call.
	Conditioned bool
}

// Generator is the interface the worker depends on. Exactly one attempt per
// call; retries happen only through a new job or a stale reclaim.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
