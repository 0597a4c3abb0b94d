package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Sameer-Bagul/EduQuest-sub000/internal/testutils"
)

// TestStructuredGenerate_Integration tests the narrator with real Gemini
// API calls. Requires valid Google Cloud credentials; hypert caches the
// HTTP traffic for replay.
func TestStructuredGenerate_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	generator := testutils.NewGeminiNarrator(t, testutils.DefaultGeminiTestConfig("narrator"), "gemini-2.5-flash")

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"narrative": map[string]interface{}{
				"type": "string",
			},
		},
		"required": []string{"narrative"},
	}

	structured, err := generator.StructuredGenerate(ctx,
		"Write one encouraging sentence for a student who mentioned photosynthesis but forgot chlorophyll.",
		schema)
	if err != nil {
		t.Fatalf("StructuredGenerate() error = %v", err)
	}

	narrative, ok := structured["narrative"].(string)
	if !ok {
		t.Fatalf("StructuredGenerate() = %v, missing narrative string", structured)
	}
	if strings.TrimSpace(narrative) == "" {
		t.Error("StructuredGenerate() returned empty narrative")
	}
}
