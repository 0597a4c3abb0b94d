package feedback

import (
	"math"
	"reflect"
	"testing"
)

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name        string
		results     []StudentResult
		wantAverage float64
		wantDist    Distribution
		wantMissed  []string
	}{
		{
			name:    "empty batch",
			results: nil,
		},
		{
			name: "distribution buckets at 90 70 50",
			results: []StudentResult{
				{StudentID: "s1", Similarity: 0.95, Awarded: 1},
				{StudentID: "s2", Similarity: 0.90, Awarded: 1},
				{StudentID: "s3", Similarity: 0.75, Awarded: 1},
				{StudentID: "s4", Similarity: 0.50, Awarded: 0},
				{StudentID: "s5", Similarity: 0.10, Awarded: 0},
			},
			wantAverage: (0.95 + 0.90 + 0.75 + 0.50 + 0.10) / 5,
			wantDist:    Distribution{Excellent: 2, Good: 1, Fair: 1, Poor: 1},
		},
		{
			name: "common missed keywords need half the class",
			results: []StudentResult{
				{StudentID: "s1", Similarity: 0.6, MissedKeywords: []string{"osmosis", "diffusion"}},
				{StudentID: "s2", Similarity: 0.6, MissedKeywords: []string{"osmosis"}},
				{StudentID: "s3", Similarity: 0.6, MissedKeywords: []string{"membrane"}},
			},
			wantAverage: 0.6,
			wantDist:    Distribution{Fair: 3},
			wantMissed:  []string{"osmosis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildReport(tt.results)

			if r.Students != len(tt.results) {
				t.Errorf("Students = %d, want %d", r.Students, len(tt.results))
			}
			if math.Abs(r.AverageSimilarity-tt.wantAverage) > 1e-9 {
				t.Errorf("AverageSimilarity = %v, want %v", r.AverageSimilarity, tt.wantAverage)
			}
			if r.Distribution != tt.wantDist {
				t.Errorf("Distribution = %+v, want %+v", r.Distribution, tt.wantDist)
			}
			if len(tt.wantMissed) > 0 || len(r.CommonMissed) > 0 {
				if !reflect.DeepEqual(r.CommonMissed, tt.wantMissed) {
					t.Errorf("CommonMissed = %v, want %v", r.CommonMissed, tt.wantMissed)
				}
			}
		})
	}
}
