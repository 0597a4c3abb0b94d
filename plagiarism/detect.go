// Package plagiarism flags suspiciously similar submissions. Pairwise
// detection compares every submission pair to one question; reference
// risk assessment scans a single answer for long verbatim runs copied
// from the answer key.
//
// Both signals use the undampened similarity: dampening caps the graded
// overall score at 0.85, below every reporting threshold here.
package plagiarism

import (
	"context"
	"sort"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
	"github.com/Sameer-Bagul/EduQuest-sub000/normalize"
	"github.com/Sameer-Bagul/EduQuest-sub000/similarity"
)

const (
	// DefaultReportThreshold: pairs at or below this similarity are not
	// reported at all.
	DefaultReportThreshold = 0.85

	highSimilarity   = 0.95
	mediumSimilarity = 0.90
)

// Options configures a Detector.
type Options struct {
	// ReportThreshold is the minimum (exclusive) pairwise similarity
	// that produces a case. Zero or negative means
	// DefaultReportThreshold.
	ReportThreshold float64
	// Normalizer preprocesses text for the consecutive-run scan.
	// Defaults to normalize.New().
	Normalizer *normalize.Normalizer
}

// Detector runs plagiarism analysis over submissions to one question.
type Detector struct {
	engine     *similarity.Engine
	normalizer *normalize.Normalizer
	threshold  float64
}

// New creates a Detector backed by the given similarity engine.
func New(engine *similarity.Engine, opts Options) *Detector {
	if opts.ReportThreshold <= 0 {
		opts.ReportThreshold = DefaultReportThreshold
	}
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.New()
	}
	return &Detector{
		engine:     engine,
		normalizer: opts.Normalizer,
		threshold:  opts.ReportThreshold,
	}
}

// DetectPairwise compares every unordered submission pair with the same
// metric and reports the pairs above the threshold, sorted by
// similarity descending. O(n²) scorer calls; fine at classroom scale,
// run it in the background for large cohorts.
func (d *Detector) DetectPairwise(ctx context.Context, submissions []api.SubmissionText) []api.PlagiarismCase {
	var cases []api.PlagiarismCase
	for i := 0; i < len(submissions); i++ {
		for j := i + 1; j < len(submissions); j++ {
			sim := d.engine.Compare(ctx, submissions[i].Text, submissions[j].Text).Raw
			if sim <= d.threshold {
				continue
			}
			cases = append(cases, api.PlagiarismCase{
				StudentA:   submissions[i].StudentID,
				StudentB:   submissions[j].StudentID,
				Similarity: sim,
				Risk:       pairRisk(sim),
			})
		}
	}
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].Similarity > cases[j].Similarity
	})
	return cases
}

// AssessAgainstReference measures how much of the reference text an
// individual answer reproduces verbatim: the longest run of consecutive
// matching words between the two word sequences (lowercased and
// punctuation-stripped, not stemmed), combined with the undampened
// similarity.
func (d *Detector) AssessAgainstReference(ctx context.Context, answer, reference string) api.ReferenceRisk {
	answerWords := d.normalizer.Words(answer)
	referenceWords := d.normalizer.Words(reference)

	risk := api.ReferenceRisk{
		LongestRun: longestRun(answerWords, referenceWords),
		Similarity: d.engine.Compare(ctx, answer, reference).Raw,
		WordCount:  len(answerWords),
	}

	switch {
	case risk.LongestRun > 10 || (risk.Similarity > highSimilarity && risk.WordCount > 20):
		risk.Risk = api.RiskHigh
	case risk.LongestRun > 5 || (risk.Similarity > mediumSimilarity && risk.WordCount > 15):
		risk.Risk = api.RiskMedium
	default:
		risk.Risk = api.RiskLow
	}
	return risk
}

func pairRisk(sim float64) api.RiskLevel {
	switch {
	case sim > highSimilarity:
		return api.RiskHigh
	case sim > mediumSimilarity:
		return api.RiskMedium
	default:
		return api.RiskLow
	}
}

// longestRun returns the length of the longest contiguous word run
// present in both sequences. Rolling-array DP, O(len(a)*len(b)).
func longestRun(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return best
}
