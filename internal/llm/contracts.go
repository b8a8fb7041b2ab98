// Package llm builds the multimodal prompts for the claims tasks and defines
// the client contract the pipeline depends on.
package llm

import "context"

// PromptPair is a composed system/user message pair ready to send alongside
// the claim image.
type PromptPair struct {
	System string
	User   string
}

// ChatClient is the interface the pipeline depends on. Implementations send
// the prompt pair plus one image and return the raw model output, which is
// expected but not guaranteed to be JSON.
type ChatClient interface {
	Complete(ctx context.Context, prompts PromptPair, imageDataURL string) ([]byte, error)
}

// UpstreamServiceError wraps any failure talking to the model provider so the
// transport layer can distinguish it from bad input.
type UpstreamServiceError struct {
	Provider string
	Err      error
}

func (e *UpstreamServiceError) Error() string {
	return "upstream " + e.Provider + " error: " + e.Err.Error()
}

func (e *UpstreamServiceError) Unwrap() error { return e.Err }
