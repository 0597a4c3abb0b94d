// Package feedback renders a similarity breakdown into human-readable
// text: per-answer strengths and improvements for the student, and an
// aggregate report for the teacher. The list generation is
// deterministic templating; an optional LLM narrator can turn the lists
// into prose but never influences grading.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
)

// Feedback is the student-facing result for one answer.
type Feedback struct {
	Strengths    []string
	Improvements []string
}

// Options configures a Generator.
type Options struct {
	// LLM, when set, enables Narrate. Generate never uses it.
	LLM api.LLMGenerator
}

// Generator produces feedback from similarity breakdowns.
type Generator struct {
	llm api.LLMGenerator
}

// New creates a Generator.
func New(opts Options) *Generator {
	return &Generator{llm: opts.LLM}
}

// Generate derives strengths and improvements from the breakdown's
// sub-scores and keyword coverage. Pure and deterministic.
func (g *Generator) Generate(b api.Breakdown) Feedback {
	var fb Feedback

	if b.Semantic >= 0.7 {
		fb.Strengths = append(fb.Strengths, "Covers the key ideas of the expected answer.")
	}
	if len(b.MatchedKeywords) > 0 {
		fb.Strengths = append(fb.Strengths,
			fmt.Sprintf("Uses important terms: %s.", strings.Join(b.MatchedKeywords, ", ")))
	}
	if b.Structural >= 0.7 && b.Readability >= 0.5 {
		fb.Strengths = append(fb.Strengths, "Well-structured answer with clear sentences.")
	}
	if len(fb.Strengths) == 0 && b.Overall >= 0.3 {
		fb.Strengths = append(fb.Strengths, "Shows partial understanding of the topic.")
	}

	if len(b.MissedKeywords) > 0 {
		fb.Improvements = append(fb.Improvements,
			fmt.Sprintf("Mention the missing terms: %s.", strings.Join(b.MissedKeywords, ", ")))
	}
	if b.Stemmed < 0.4 {
		fb.Improvements = append(fb.Improvements, "Expand the answer to cover more of the expected content.")
	}
	if b.Structural < 0.4 {
		fb.Improvements = append(fb.Improvements, "Match the expected answer's length and level of detail.")
	}
	if b.Readability < 0.3 && b.Structural >= 0.4 {
		fb.Improvements = append(fb.Improvements, "Break long sentences up for clarity.")
	}
	if len(fb.Improvements) == 0 && b.Overall < 0.95 {
		fb.Improvements = append(fb.Improvements, "Add more detail to strengthen the answer.")
	}

	return fb
}

const narratePromptTemplate = `You are writing short, encouraging feedback for a student's answer.

[BEGIN DATA]
[Strengths]: %s
[Improvements]: %s
[END DATA]

Write two or three sentences of feedback addressed to the student,
covering the strengths first and the improvements second. Do not invent
facts beyond the data above.`

// Narrate turns Generate's lists into prose via the configured LLM.
// Returns api.ErrNoLLMGenerator when no LLM was configured; callers
// should fall back to the deterministic lists on any error.
func (g *Generator) Narrate(ctx context.Context, b api.Breakdown) (string, error) {
	if g.llm == nil {
		return "", api.ErrNoLLMGenerator
	}

	fb := g.Generate(b)
	prompt := fmt.Sprintf(narratePromptTemplate,
		strings.Join(fb.Strengths, "; "),
		strings.Join(fb.Improvements, "; "))

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"narrative": map[string]interface{}{
				"type":        "string",
				"description": "Two to three sentences of student-facing feedback",
			},
		},
		"required": []string{"narrative"},
	}

	structured, err := g.llm.StructuredGenerate(ctx, prompt, schema)
	if err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrLLMGenerationFailed, err)
	}
	narrative, ok := structured["narrative"].(string)
	if !ok || strings.TrimSpace(narrative) == "" {
		return "", fmt.Errorf("%w: response missing narrative", api.ErrLLMGenerationFailed)
	}
	return narrative, nil
}
