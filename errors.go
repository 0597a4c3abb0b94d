package eduscore

import "github.com/Sameer-Bagul/EduQuest-sub000/api"

var (
	// ErrNoLanguageClient is returned when a Google Cloud Language client is required but not provided
	ErrNoLanguageClient = api.ErrNoLanguageClient
	// ErrNoLLMGenerator is returned when an LLM generator is required but not provided
	ErrNoLLMGenerator = api.ErrNoLLMGenerator
	// ErrLLMGenerationFailed is returned when LLM generation fails
	ErrLLMGenerationFailed = api.ErrLLMGenerationFailed
)
