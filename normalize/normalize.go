// Package normalize turns raw answer text into the token sets the
// similarity sub-scores operate on. A Normalizer is stateless and safe
// for concurrent use; build one at startup and share it.
package normalize

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

var (
	punctuation = regexp.MustCompile(`[^\w\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// stopWords is a closed list of common English function words dropped
// during normalization: articles, pronouns, auxiliary verbs,
// conjunctions and the most frequent prepositions.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the",
		"i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their",
		"this", "that", "these", "those",
		"is", "am", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did",
		"will", "would", "shall", "should", "can", "could", "may", "might", "must",
		"and", "or", "but", "nor", "so", "yet", "because", "while", "if", "than", "then",
		"of", "in", "on", "at", "to", "from", "by", "with", "about", "as", "into", "over", "after",
		"not", "no", "there", "here",
		"what", "which", "who", "whom", "when", "where", "how", "why",
		"all", "each", "both", "for",
	} {
		stopWords[w] = struct{}{}
	}
}

// Normalizer is the shared text preprocessor for all scorers.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Tokens lowercases text, strips punctuation, splits on whitespace,
// drops stop words and tokens of length <= 2, and stems what survives.
// It never fails; empty input yields an empty token list.
func (n *Normalizer) Tokens(text string) []string {
	words := n.Words(text)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, Stem(w))
	}
	return tokens
}

// Words lowercases text, replaces punctuation with spaces and splits on
// whitespace runs. No stop-word removal and no stemming; this is the
// word sequence the consecutive-run plagiarism scan operates on.
func (n *Normalizer) Words(text string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = strings.TrimSpace(whitespace.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}

// Stem reduces a token to its morphological stem so that variants like
// "running" and "run" collapse to one token. Tokens the stemmer cannot
// handle pass through unchanged.
func Stem(token string) string {
	stemmed, err := snowball.Stem(token, "english", false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
