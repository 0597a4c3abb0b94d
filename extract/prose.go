// Package extract provides the default EntityExtractor: a pure-Go
// part-of-speech tagger and named-entity recognizer. It performs no I/O
// and is fully deterministic, which keeps the default scoring path a
// pure function of its inputs.
package extract

import (
	"context"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
)

// importantTags are the Penn Treebank tags treated as "important"
// lexical items: proper nouns, common nouns and verbs.
var importantTags = map[string]struct{}{
	"NNP": {}, "NNPS": {},
	"NN": {}, "NNS": {},
	"VB": {}, "VBD": {}, "VBG": {}, "VBN": {}, "VBP": {}, "VBZ": {},
}

// Prose implements api.EntityExtractor with local tagging only.
type Prose struct{}

// NewProse creates a Prose extractor.
func NewProse() *Prose {
	return &Prose{}
}

// Extract returns the lowercased set of named entities, nouns and verbs
// found in text, sorted for stable output.
func (p *Prose) Extract(_ context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, ent := range doc.Entities() {
		seen[strings.ToLower(ent.Text)] = struct{}{}
	}
	for _, tok := range doc.Tokens() {
		if _, ok := importantTags[tok.Tag]; ok {
			seen[strings.ToLower(tok.Text)] = struct{}{}
		}
	}

	items := make([]string, 0, len(seen))
	for item := range seen {
		items = append(items, item)
	}
	sort.Strings(items)
	return items, nil
}

// Verify that Prose implements api.EntityExtractor
var _ api.EntityExtractor = (*Prose)(nil)
