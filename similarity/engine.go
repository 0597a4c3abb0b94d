// Package similarity implements the multi-signal answer scorer. It
// combines four independent sub-scores over a (student answer,
// reference) text pair into one weighted similarity, then dampens
// near-perfect scores to discourage rote matching.
package similarity

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
	"github.com/Sameer-Bagul/EduQuest-sub000/normalize"
)

// Sub-score weights. Semantic overlap dominates; structure is a
// tie-breaker signal only.
const (
	semanticWeight   = 0.4
	stemmedWeight    = 0.3
	keywordWeight    = 0.2
	structuralWeight = 0.1
)

// Dampening thresholds: scores above 0.8 are scaled by 0.85, above 0.6
// by 0.9. A verbatim answer therefore tops out at 0.85, not 1.0.
const (
	dampenHighAbove  = 0.8
	dampenHighFactor = 0.85
	dampenMidAbove   = 0.6
	dampenMidFactor  = 0.9
)

// Tokens longer than this (after stemming) count as keywords.
const keywordMinLen = 4

// Options configures an Engine.
type Options struct {
	// Extractor supplies the semantic sub-score's entity sets. When nil,
	// or whenever extraction fails, the semantic sub-score degrades to a
	// plain word-overlap metric.
	Extractor api.EntityExtractor
	// Normalizer preprocesses text for the stemmed and keyword
	// sub-scores. Defaults to normalize.New().
	Normalizer *normalize.Normalizer
}

// Engine scores student answers against reference texts. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	extractor  api.EntityExtractor
	normalizer *normalize.Normalizer
}

// New creates an Engine.
func New(opts Options) *Engine {
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.New()
	}
	return &Engine{
		extractor:  opts.Extractor,
		normalizer: opts.Normalizer,
	}
}

// Compare scores answer against reference and returns the full
// breakdown. It never fails: extraction errors degrade the semantic
// sub-score, and empty inputs follow the per-sub-score edge rules.
func (e *Engine) Compare(ctx context.Context, answer, reference string) api.Breakdown {
	var b api.Breakdown

	b.Semantic, b.SemanticFallback = e.semantic(ctx, answer, reference)

	answerTokens := e.normalizer.Tokens(answer)
	referenceTokens := e.normalizer.Tokens(reference)
	b.Stemmed = stemmedOverlap(answerTokens, referenceTokens)
	b.Keyword = keywordOverlap(answerTokens, referenceTokens)
	b.MatchedKeywords, b.MissedKeywords = keywordCoverage(answerTokens, referenceTokens)

	b.Structural = structuralOverlap(answer, reference)
	b.Readability = readability(answer)

	b.Raw = clamp01(semanticWeight*b.Semantic +
		stemmedWeight*b.Stemmed +
		keywordWeight*b.Keyword +
		structuralWeight*b.Structural)
	b.Overall = clamp01(dampen(b.Raw))

	return b
}

// Score implements api.Scorer over Compare. The dampened overall
// similarity is the score; sub-scores and keyword coverage land in the
// metadata so callers can log degraded paths.
func (e *Engine) Score(ctx context.Context, in api.ScoreInputs) api.Score {
	b := e.Compare(ctx, in.Answer, in.Reference)
	return api.Score{
		Name:  "AnswerSimilarity",
		Score: b.Overall,
		Metadata: map[string]any{
			"semantic":          b.Semantic,
			"stemmed":           b.Stemmed,
			"keyword":           b.Keyword,
			"structural":        b.Structural,
			"raw":               b.Raw,
			"matched_keywords":  b.MatchedKeywords,
			"missed_keywords":   b.MissedKeywords,
			"readability":       b.Readability,
			"semantic_fallback": b.SemanticFallback,
		},
	}
}

// Verify that Engine implements api.Scorer
var _ api.Scorer = (*Engine)(nil)

// semantic computes the entity-overlap sub-score: Jaccard index over
// the important lexical items of the two raw texts. The bool result
// reports whether the basic word-overlap fallback was used.
func (e *Engine) semantic(ctx context.Context, answer, reference string) (float64, bool) {
	if e.extractor == nil {
		return basicOverlap(answer, reference), true
	}

	answerItems, err := e.extractor.Extract(ctx, answer)
	if err != nil {
		return basicOverlap(answer, reference), true
	}
	referenceItems, err := e.extractor.Extract(ctx, reference)
	if err != nil {
		return basicOverlap(answer, reference), true
	}

	a, r := toSet(answerItems), toSet(referenceItems)
	if len(a) == 0 && len(r) == 0 {
		return 0, false
	}
	return jaccard(a, r), false
}

// basicOverlap is the degraded semantic metric: Jaccard index over the
// lowercased whitespace-split word sets, no stemming or stop-word
// removal.
func basicOverlap(answer, reference string) float64 {
	a := toSet(strings.Fields(strings.ToLower(answer)))
	r := toSet(strings.Fields(strings.ToLower(reference)))
	if len(a) == 0 && len(r) == 0 {
		return 0
	}
	return jaccard(a, r)
}

// stemmedOverlap is the Jaccard index over the stemmed token sets. Two
// empty sets are vacuously identical; exactly one empty set scores 0.
func stemmedOverlap(answerTokens, referenceTokens []string) float64 {
	a, r := toSet(answerTokens), toSet(referenceTokens)
	if len(a) == 0 && len(r) == 0 {
		return 1
	}
	if len(a) == 0 || len(r) == 0 {
		return 0
	}
	return jaccard(a, r)
}

// keywordOverlap restricts both token sets to keywords and scores
// |intersection| / max(|a|, |r|). The max denominator is intentionally
// more forgiving than Jaccard: extra keywords on one side only dilute,
// never double-count.
func keywordOverlap(answerTokens, referenceTokens []string) float64 {
	a := keywordSet(answerTokens)
	r := keywordSet(referenceTokens)
	if len(a) == 0 && len(r) == 0 {
		return 1
	}
	if len(a) == 0 || len(r) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := r[t]; ok {
			inter++
		}
	}
	return float64(inter) / float64(max(len(a), len(r)))
}

// keywordCoverage reports which reference keywords the answer does and
// does not contain, sorted for stable output.
func keywordCoverage(answerTokens, referenceTokens []string) (matched, missed []string) {
	a := keywordSet(answerTokens)
	for t := range keywordSet(referenceTokens) {
		if _, ok := a[t]; ok {
			matched = append(matched, t)
		} else {
			missed = append(missed, t)
		}
	}
	sort.Strings(matched)
	sort.Strings(missed)
	return matched, missed
}

// structuralOverlap averages the character-length ratio and the
// sentence-count ratio of the two raw texts.
func structuralOverlap(answer, reference string) float64 {
	lengthRatio := ratio(utf8.RuneCountInString(answer), utf8.RuneCountInString(reference))
	sentenceRatio := ratio(len(sentences(answer)), len(sentences(reference)))
	return (lengthRatio + sentenceRatio) / 2
}

// readability is a clarity heuristic over the student answer: shorter
// average sentence length reads as better-segmented text. Monotonic
// only; the exact curve feeds feedback wording, never grading.
func readability(text string) float64 {
	sents := sentences(text)
	if len(sents) == 0 {
		return 0
	}
	words := 0
	for _, s := range sents {
		words += len(strings.Fields(s))
	}
	avg := float64(words) / float64(len(sents))
	return clamp01(1 - avg/40)
}

// sentences splits text on sentence-terminating punctuation and drops
// blank segments.
func sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// dampen scales down near-perfect raw scores.
func dampen(raw float64) float64 {
	switch {
	case raw > dampenHighAbove:
		return raw * dampenHighFactor
	case raw > dampenMidAbove:
		return raw * dampenMidFactor
	default:
		return raw
	}
}

func keywordSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if len(t) > keywordMinLen {
			set[t] = struct{}{}
		}
	}
	return set
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// jaccard is |intersection| / |union|; two empty sets score 0.
func jaccard(a, b map[string]struct{}) float64 {
	union := len(b)
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// ratio is min/max of two non-negative counts; two zeros are treated as
// identical.
func ratio(a, b int) float64 {
	if a == 0 && b == 0 {
		return 1
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo) / float64(hi)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
