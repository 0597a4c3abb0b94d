// Package googlenlp implements EntityExtractor on the Google Cloud
// Natural Language API, for deployments that want stronger entity
// recognition than the local tagger. Extraction failures are reported
// to the caller; the similarity engine degrades to its word-overlap
// fallback rather than failing the scoring call.
package googlenlp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	language "cloud.google.com/go/language/apiv1"
	languagepb "cloud.google.com/go/language/apiv1/languagepb"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
)

// Extractor implements api.EntityExtractor using Google Cloud Natural Language API client
type Extractor struct {
	client *language.Client
}

// NewExtractor creates a new extractor using a preconfigured *language.Client (auth handled by caller)
func NewExtractor(client *language.Client) api.EntityExtractor {
	return &Extractor{client: client}
}

// Extract annotates text with entity and syntax analysis and returns
// the lowercased set of entity names, nouns and verbs.
func (e *Extractor) Extract(ctx context.Context, text string) ([]string, error) {
	if e.client == nil {
		return nil, api.ErrNoLanguageClient
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	req := &languagepb.AnnotateTextRequest{
		Document: &languagepb.Document{
			Type: languagepb.Document_PLAIN_TEXT,
			Source: &languagepb.Document_Content{
				Content: text,
			},
		},
		Features: &languagepb.AnnotateTextRequest_Features{
			ExtractEntities: true,
			ExtractSyntax:   true,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := e.client.AnnotateText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("annotate text failed: %w", err)
	}

	seen := make(map[string]struct{})
	for _, ent := range resp.Entities {
		seen[strings.ToLower(ent.Name)] = struct{}{}
	}
	for _, tok := range resp.Tokens {
		if tok.PartOfSpeech == nil || tok.Text == nil {
			continue
		}
		switch tok.PartOfSpeech.Tag {
		case languagepb.PartOfSpeech_NOUN, languagepb.PartOfSpeech_VERB:
			seen[strings.ToLower(tok.Text.Content)] = struct{}{}
		}
	}

	items := make([]string, 0, len(seen))
	for item := range seen {
		items = append(items, item)
	}
	sort.Strings(items)
	return items, nil
}
