// Package eduscore is the answer-scoring core of the EduQuest platform:
// it compares student answers against teacher answer keys, awards
// marks, flags plagiarism and generates feedback. A pure in-process
// library; persistence, auth and HTTP belong to the embedding
// application.
package eduscore

import (
	language "cloud.google.com/go/language/apiv1"
	"google.golang.org/genai"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
	"github.com/Sameer-Bagul/EduQuest-sub000/extract"
	"github.com/Sameer-Bagul/EduQuest-sub000/feedback"
	"github.com/Sameer-Bagul/EduQuest-sub000/gemini"
	"github.com/Sameer-Bagul/EduQuest-sub000/googlenlp"
	"github.com/Sameer-Bagul/EduQuest-sub000/grade"
	"github.com/Sameer-Bagul/EduQuest-sub000/normalize"
	"github.com/Sameer-Bagul/EduQuest-sub000/plagiarism"
	"github.com/Sameer-Bagul/EduQuest-sub000/similarity"
)

type Score = api.Score
type ScoreInputs = api.ScoreInputs
type Scorer = api.Scorer
type Breakdown = api.Breakdown
type Question = api.Question
type Answer = api.Answer
type QuestionScore = api.QuestionScore
type GradeSummary = api.GradeSummary
type SubmissionText = api.SubmissionText
type PlagiarismCase = api.PlagiarismCase
type ReferenceRisk = api.ReferenceRisk
type RiskLevel = api.RiskLevel

const (
	RiskLow    = api.RiskLow
	RiskMedium = api.RiskMedium
	RiskHigh   = api.RiskHigh
)

type EntityExtractor = api.EntityExtractor
type LLMGenerator = api.LLMGenerator

// SimilarityOptions configures similarity engine creation
type SimilarityOptions struct {
	extractor  api.EntityExtractor
	normalizer *normalize.Normalizer
}

// WithEntityExtractor sets the entity extractor for the semantic sub-score
func WithEntityExtractor(extractor api.EntityExtractor) func(*SimilarityOptions) {
	return func(opts *SimilarityOptions) {
		opts.extractor = extractor
	}
}

// WithNormalizer sets the text normalizer shared by the sub-scores
func WithNormalizer(normalizer *normalize.Normalizer) func(*SimilarityOptions) {
	return func(opts *SimilarityOptions) {
		opts.normalizer = normalizer
	}
}

// NewSimilarity creates the similarity engine using functional options.
// Without options it uses the local pure-Go extractor and the default
// normalizer, which keeps scoring deterministic and I/O-free.
func NewSimilarity(opts ...func(*SimilarityOptions)) *similarity.Engine {
	options := &SimilarityOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.extractor == nil {
		options.extractor = extract.NewProse()
	}
	return similarity.New(similarity.Options{
		Extractor:  options.extractor,
		Normalizer: options.normalizer,
	})
}

// GraderOptions configures grader creation
type GraderOptions struct {
	passThreshold    float64
	marksPerQuestion int
	marks            map[string]int
}

// WithPassThreshold sets the minimum similarity (inclusive) that awards marks
func WithPassThreshold(threshold float64) func(*GraderOptions) {
	return func(opts *GraderOptions) {
		opts.passThreshold = threshold
	}
}

// WithMarksPerQuestion sets the flat mark value of each question
func WithMarksPerQuestion(marks int) func(*GraderOptions) {
	return func(opts *GraderOptions) {
		opts.marksPerQuestion = marks
	}
}

// WithQuestionMarks overrides the mark value for individual questions by ID
func WithQuestionMarks(marks map[string]int) func(*GraderOptions) {
	return func(opts *GraderOptions) {
		opts.marks = marks
	}
}

// NewGrader creates a grader over the given similarity engine.
func NewGrader(engine *similarity.Engine, opts ...func(*GraderOptions)) *grade.Grader {
	options := &GraderOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return grade.New(engine, grade.Options{
		PassThreshold:    options.passThreshold,
		MarksPerQuestion: options.marksPerQuestion,
		Marks:            options.marks,
	})
}

// DetectorOptions configures plagiarism detector creation
type DetectorOptions struct {
	reportThreshold float64
	normalizer      *normalize.Normalizer
}

// WithReportThreshold sets the minimum pairwise similarity that produces a case
func WithReportThreshold(threshold float64) func(*DetectorOptions) {
	return func(opts *DetectorOptions) {
		opts.reportThreshold = threshold
	}
}

// WithDetectorNormalizer sets the normalizer for the consecutive-run scan
func WithDetectorNormalizer(normalizer *normalize.Normalizer) func(*DetectorOptions) {
	return func(opts *DetectorOptions) {
		opts.normalizer = normalizer
	}
}

// NewDetector creates a plagiarism detector over the given similarity engine.
func NewDetector(engine *similarity.Engine, opts ...func(*DetectorOptions)) *plagiarism.Detector {
	options := &DetectorOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return plagiarism.New(engine, plagiarism.Options{
		ReportThreshold: options.reportThreshold,
		Normalizer:      options.normalizer,
	})
}

// FeedbackOptions configures feedback generator creation
type FeedbackOptions struct {
	llm api.LLMGenerator
}

// WithLLMGenerator sets the LLM used by Narrate; list generation never needs it
func WithLLMGenerator(llm api.LLMGenerator) func(*FeedbackOptions) {
	return func(opts *FeedbackOptions) {
		opts.llm = llm
	}
}

// NewFeedback creates a feedback generator using functional options.
func NewFeedback(opts ...func(*FeedbackOptions)) *feedback.Generator {
	options := &FeedbackOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return feedback.New(feedback.Options{LLM: options.llm})
}

// NewGoogleEntityExtractor creates an EntityExtractor backed by the
// Cloud Natural Language API (auth handled by caller).
func NewGoogleEntityExtractor(client *language.Client) api.EntityExtractor {
	return googlenlp.NewExtractor(client)
}

// NewGeminiNarrator creates an LLMGenerator backed by Gemini.
// Example model: "gemini-2.5-flash".
func NewGeminiNarrator(client *genai.Client, modelName string) api.LLMGenerator {
	return gemini.NewGenerator(client, modelName)
}
