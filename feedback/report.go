package feedback

import "sort"

// StudentResult is one student's graded outcome for the question under
// report.
type StudentResult struct {
	StudentID      string
	Similarity     float64
	Awarded        int
	MissedKeywords []string
}

// Distribution buckets similarities at the 90/70/50 percent cutoffs.
type Distribution struct {
	Excellent int // similarity >= 0.9
	Good      int // similarity >= 0.7
	Fair      int // similarity >= 0.5
	Poor      int // below 0.5
}

// Report is the teacher-facing aggregate over one question's scored
// submissions.
type Report struct {
	Students          int
	AverageSimilarity float64
	Distribution      Distribution
	// CommonMissed lists keywords missed by at least half the students,
	// most frequent first.
	CommonMissed []string
}

// BuildReport aggregates already-computed results. Plain arithmetic, no
// rescoring.
func BuildReport(results []StudentResult) Report {
	r := Report{Students: len(results)}
	if len(results) == 0 {
		return r
	}

	missedCounts := make(map[string]int)
	total := 0.0
	for _, res := range results {
		total += res.Similarity
		switch {
		case res.Similarity >= 0.9:
			r.Distribution.Excellent++
		case res.Similarity >= 0.7:
			r.Distribution.Good++
		case res.Similarity >= 0.5:
			r.Distribution.Fair++
		default:
			r.Distribution.Poor++
		}
		for _, kw := range res.MissedKeywords {
			missedCounts[kw]++
		}
	}
	r.AverageSimilarity = total / float64(len(results))

	half := (len(results) + 1) / 2
	for kw, n := range missedCounts {
		if n >= half {
			r.CommonMissed = append(r.CommonMissed, kw)
		}
	}
	sort.Slice(r.CommonMissed, func(i, j int) bool {
		if missedCounts[r.CommonMissed[i]] != missedCounts[r.CommonMissed[j]] {
			return missedCounts[r.CommonMissed[i]] > missedCounts[r.CommonMissed[j]]
		}
		return r.CommonMissed[i] < r.CommonMissed[j]
	})
	return r
}
