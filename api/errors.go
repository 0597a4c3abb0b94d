package api

import "errors"

var (
	// ErrNoLanguageClient is returned when a Google Cloud Language client is required but not provided
	ErrNoLanguageClient = errors.New("language client is required")
	// ErrNoLLMGenerator is returned when an LLM generator is required but not provided
	ErrNoLLMGenerator = errors.New("LLM generator is required")
	// ErrLLMGenerationFailed is returned when LLM generation fails
	ErrLLMGenerationFailed = errors.New("LLM generation failed")
)
