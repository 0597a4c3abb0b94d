// Package grade turns similarity scores into awarded marks for one
// submission. Grading is pure computation; persisting the result is the
// caller's concern.
package grade

import (
	"context"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
	"github.com/Sameer-Bagul/EduQuest-sub000/similarity"
)

const (
	// DefaultPassThreshold awards the mark when the dampened similarity
	// reaches 0.70.
	DefaultPassThreshold = 0.70
	// DefaultMarksPerQuestion is the flat mark value per question.
	DefaultMarksPerQuestion = 1
)

// Options configures a Grader.
type Options struct {
	// PassThreshold is the minimum similarity (inclusive) that awards
	// marks. Zero or negative means DefaultPassThreshold.
	PassThreshold float64
	// MarksPerQuestion is the mark value of each question. Zero or
	// negative means DefaultMarksPerQuestion.
	MarksPerQuestion int
	// Marks overrides MarksPerQuestion for individual questions, keyed
	// by question ID.
	Marks map[string]int
}

// Grader scores a submission's answers against their questions.
type Grader struct {
	engine *similarity.Engine
	opts   Options
}

// New creates a Grader backed by the given similarity engine.
func New(engine *similarity.Engine, opts Options) *Grader {
	if opts.PassThreshold <= 0 {
		opts.PassThreshold = DefaultPassThreshold
	}
	if opts.MarksPerQuestion <= 0 {
		opts.MarksPerQuestion = DefaultMarksPerQuestion
	}
	return &Grader{engine: engine, opts: opts}
}

// Grade scores every answer and sums the awarded marks. The result
// holds exactly one score per answer, in answer order. An answer whose
// question ID matches no question scores zero; a malformed answer costs
// the student the mark, never the caller an error.
func (g *Grader) Grade(ctx context.Context, questions []api.Question, answers []api.Answer) api.GradeSummary {
	byID := make(map[string]api.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	summary := api.GradeSummary{
		Scores: make([]api.QuestionScore, 0, len(answers)),
	}
	for _, a := range answers {
		score := api.QuestionScore{QuestionID: a.QuestionID}
		if q, ok := byID[a.QuestionID]; ok {
			score.Similarity = g.engine.Compare(ctx, a.Text, q.AnswerKey).Overall
			if score.Similarity >= g.opts.PassThreshold {
				score.Awarded = g.marksFor(q.ID)
			}
		}
		summary.Scores = append(summary.Scores, score)
		summary.TotalAwarded += score.Awarded
	}
	return summary
}

func (g *Grader) marksFor(questionID string) int {
	if marks, ok := g.opts.Marks[questionID]; ok && marks > 0 {
		return marks
	}
	return g.opts.MarksPerQuestion
}
