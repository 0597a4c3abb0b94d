package api

import (
	"context"
	"encoding/json"
)

// Question is the reference side of a comparison. AnswerKey is the text
// the scorer treats as ground truth for this question.
type Question struct {
	ID        string
	Text      string
	AnswerKey string
}

// Answer is one student response to a question. Metadata is an opaque
// payload (speech-to-text info and the like) that the scoring core never
// inspects.
type Answer struct {
	QuestionID string
	Text       string
	Metadata   json.RawMessage
}

// QuestionScore is the graded outcome for a single answer.
type QuestionScore struct {
	QuestionID string
	Similarity float64
	Awarded    int
}

// GradeSummary aggregates per-question scores for one submission.
// Scores preserves the order of the answers that produced them.
type GradeSummary struct {
	Scores       []QuestionScore
	TotalAwarded int
}

// Breakdown is the full result of comparing a student answer against a
// reference text. All similarity values are in [0, 1].
//
// Overall is the dampened score used for grading. Raw is the undampened
// weighted combination of the four sub-scores; pairwise plagiarism
// comparison uses Raw because dampening caps Overall at 0.85, below the
// plagiarism reporting thresholds.
type Breakdown struct {
	Semantic   float64
	Stemmed    float64
	Keyword    float64
	Structural float64
	Raw        float64
	Overall    float64

	// MatchedKeywords and MissedKeywords are the reference's important
	// stemmed terms that do / do not appear in the student answer.
	MatchedKeywords []string
	MissedKeywords  []string

	// Readability is a clarity heuristic over the student answer,
	// consumed only by feedback generation, never by grading.
	Readability float64

	// SemanticFallback reports that entity extraction failed (or no
	// extractor was configured) and the semantic sub-score degraded to
	// a plain word-overlap metric.
	SemanticFallback bool
}

// ScoreInputs carries the two texts being compared.
//
// Fields usage conventions:
// - Answer:    the student's response text
// - Reference: the teacher-supplied answer key
type ScoreInputs struct {
	Answer    string
	Reference string
}

// Score represents the result of an evaluation
type Score struct {
	// Name identifies the scorer that produced this result
	Name string
	// Score is a value between 0 and 1, where 1 is the best possible score
	Score float64
	// Metadata contains additional information about the scoring process
	Metadata map[string]any
	// Error contains any error that occurred during scoring
	Error error
}

// Scorer evaluates how well an answer matches its reference
type Scorer interface {
	// Score compares in.Answer against in.Reference and returns a score
	Score(ctx context.Context, in ScoreInputs) Score
}

// RiskLevel classifies how suspicious a plagiarism signal is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SubmissionText is one student's answer to the question under pairwise
// plagiarism analysis.
type SubmissionText struct {
	StudentID string
	Text      string
}

// PlagiarismCase flags a suspiciously similar pair of submissions.
type PlagiarismCase struct {
	StudentA   string
	StudentB   string
	Similarity float64
	Risk       RiskLevel
}

// ReferenceRisk is the individual plagiarism signal for one answer
// measured against the reference text, based on the longest run of
// consecutive matching words.
type ReferenceRisk struct {
	Risk       RiskLevel
	LongestRun int
	Similarity float64
	WordCount  int
}

// EntityExtractor pulls the important lexical items out of a raw text:
// proper nouns, place and organization names, common nouns and verbs.
// This interface must be implemented by library consumers; a pure-Go
// implementation is provided in the extract subpackage and a Google
// Cloud Natural Language implementation in the googlenlp subpackage.
type EntityExtractor interface {
	// Extract returns the deduplicated, lowercased lexical items of text.
	// An empty text yields an empty (or nil) slice without error.
	Extract(ctx context.Context, text string) ([]string, error)
}

// LLMGenerator is an interface for generating structured data using an LLM
// This interface must be implemented by library consumers
// A Gemini implementation is provided in the gemini subpackage
type LLMGenerator interface {
	// StructuredGenerate generates structured data based on the provided prompt and JSON schema
	// schema must be a valid JSON schema (map[string]interface{})
	// Returns the generated data as a map[string]interface{} or an error
	StructuredGenerate(ctx context.Context, prompt string, schema map[string]interface{}) (map[string]interface{}, error)
}
