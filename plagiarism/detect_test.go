package plagiarism

import (
	"context"
	"strings"
	"testing"

	"github.com/Sameer-Bagul/EduQuest-sub000/api"
	"github.com/Sameer-Bagul/EduQuest-sub000/similarity"
)

type fieldsExtractor struct{}

func (fieldsExtractor) Extract(_ context.Context, text string) ([]string, error) {
	return strings.Fields(strings.ToLower(text)), nil
}

func newTestDetector() *Detector {
	engine := similarity.New(similarity.Options{Extractor: fieldsExtractor{}})
	return New(engine, Options{})
}

func TestDetectPairwise(t *testing.T) {
	ctx := context.Background()
	detector := newTestDetector()

	copied := "The mitochondria is the powerhouse of the cell and produces energy through respiration"
	original := "Mitochondria generate most of the chemical energy needed to power the cell"
	unrelated := "The French Revolution began in 1789 with the storming of the Bastille"

	tests := []struct {
		name        string
		submissions []api.SubmissionText
		wantCases   int
		wantRisk    api.RiskLevel
	}{
		{
			name: "verbatim copy flagged high",
			submissions: []api.SubmissionText{
				{StudentID: "s1", Text: copied},
				{StudentID: "s2", Text: copied},
			},
			wantCases: 1,
			wantRisk:  api.RiskHigh,
		},
		{
			name: "independently written answers not flagged",
			submissions: []api.SubmissionText{
				{StudentID: "s1", Text: original},
				{StudentID: "s2", Text: copied},
			},
			wantCases: 0,
		},
		{
			name: "unrelated answers not flagged",
			submissions: []api.SubmissionText{
				{StudentID: "s1", Text: original},
				{StudentID: "s2", Text: unrelated},
			},
			wantCases: 0,
		},
		{
			name:        "single submission yields nothing",
			submissions: []api.SubmissionText{{StudentID: "s1", Text: copied}},
			wantCases:   0,
		},
		{
			name:        "no submissions",
			submissions: nil,
			wantCases:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases := detector.DetectPairwise(ctx, tt.submissions)
			if len(cases) != tt.wantCases {
				t.Fatalf("DetectPairwise() returned %d cases, want %d: %+v", len(cases), tt.wantCases, cases)
			}
			if tt.wantCases > 0 {
				if cases[0].Risk != tt.wantRisk {
					t.Errorf("risk = %q, want %q (similarity %v)", cases[0].Risk, tt.wantRisk, cases[0].Similarity)
				}
				if cases[0].StudentA != "s1" || cases[0].StudentB != "s2" {
					t.Errorf("case pair = (%q, %q), want (s1, s2)", cases[0].StudentA, cases[0].StudentB)
				}
			}
		})
	}
}

func TestDetectPairwiseOrdering(t *testing.T) {
	ctx := context.Background()
	detector := newTestDetector()

	base := "The mitochondria is the powerhouse of the cell and produces energy through respiration"
	near := "The mitochondria is the powerhouse of the cell and produces most energy through respiration"

	cases := detector.DetectPairwise(ctx, []api.SubmissionText{
		{StudentID: "s1", Text: base},
		{StudentID: "s2", Text: base},
		{StudentID: "s3", Text: near},
	})

	if len(cases) < 2 {
		t.Fatalf("DetectPairwise() returned %d cases, want at least 2", len(cases))
	}
	for i := 1; i < len(cases); i++ {
		if cases[i].Similarity > cases[i-1].Similarity {
			t.Errorf("cases not sorted descending: case %d (%v) > case %d (%v)",
				i, cases[i].Similarity, i-1, cases[i-1].Similarity)
		}
	}
	if cases[0].StudentA != "s1" || cases[0].StudentB != "s2" {
		t.Errorf("top case = (%q, %q), want the verbatim pair (s1, s2)", cases[0].StudentA, cases[0].StudentB)
	}
}

func TestAssessAgainstReference(t *testing.T) {
	ctx := context.Background()
	detector := newTestDetector()

	reference := "The water cycle describes how water evaporates from the surface rises into the atmosphere cools and condenses into rain or snow then falls again"

	tests := []struct {
		name       string
		answer     string
		wantRisk   api.RiskLevel
		wantRunMin int
	}{
		{
			name:       "verbatim copy of the reference",
			answer:     reference,
			wantRisk:   api.RiskHigh,
			wantRunMin: 11,
		},
		{
			name: "long verbatim fragment",
			// 11 consecutive words lifted from the reference.
			answer:     "I think the water cycle describes how water evaporates from the surface rises and that is all",
			wantRisk:   api.RiskHigh,
			wantRunMin: 11,
		},
		{
			name:       "short shared phrase only",
			answer:     "Water evaporates and then it rains somewhere else entirely",
			wantRisk:   api.RiskLow,
			wantRunMin: 0,
		},
		{
			name:       "empty answer",
			answer:     "",
			wantRisk:   api.RiskLow,
			wantRunMin: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := detector.AssessAgainstReference(ctx, tt.answer, reference)
			if risk.Risk != tt.wantRisk {
				t.Errorf("risk = %q, want %q (run %d, similarity %v, words %d)",
					risk.Risk, tt.wantRisk, risk.LongestRun, risk.Similarity, risk.WordCount)
			}
			if risk.LongestRun < tt.wantRunMin {
				t.Errorf("LongestRun = %d, want >= %d", risk.LongestRun, tt.wantRunMin)
			}
		})
	}
}

func TestAssessMediumRun(t *testing.T) {
	ctx := context.Background()
	detector := newTestDetector()

	reference := "Plants absorb carbon dioxide from the air and release oxygen during photosynthesis"
	// Exactly six consecutive words shared: run > 5 but not > 10.
	answer := "In my opinion plants absorb carbon dioxide from the environment"

	risk := detector.AssessAgainstReference(ctx, answer, reference)
	if risk.LongestRun <= 5 || risk.LongestRun > 10 {
		t.Fatalf("test setup: LongestRun = %d, want in (5, 10]", risk.LongestRun)
	}
	if risk.Risk != api.RiskMedium {
		t.Errorf("risk = %q, want %q", risk.Risk, api.RiskMedium)
	}
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "no overlap",
			a:    []string{"alpha", "beta"},
			b:    []string{"gamma", "delta"},
			want: 0,
		},
		{
			name: "full overlap",
			a:    []string{"one", "two", "three"},
			b:    []string{"one", "two", "three"},
			want: 3,
		},
		{
			name: "interior run",
			a:    []string{"x", "one", "two", "three", "y"},
			b:    []string{"z", "one", "two", "three", "w"},
			want: 3,
		},
		{
			name: "repeated words pick the longest run",
			a:    []string{"a", "b", "a", "b", "c"},
			b:    []string{"a", "b", "c"},
			want: 3,
		},
		{
			name: "adjacency required",
			a:    []string{"one", "x", "two", "x", "three"},
			b:    []string{"one", "two", "three"},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestRun(tt.a, tt.b); got != tt.want {
				t.Errorf("longestRun(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
