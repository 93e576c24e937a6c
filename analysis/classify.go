// Package analysis turns call records into the category breakdown and the
// per-disposition note and keyword views. Everything here is a pure function
// of its input.
package analysis

import (
	"sort"

	"github.com/nish-b/found-call-explorer/model"
)

// WorkingSet drops cancelled rows. The result keeps the input order.
func WorkingSet(records []model.CallRecord) []model.CallRecord {
	out := make([]model.CallRecord, 0, len(records))
	for _, r := range records {
		if r.Disposition == Cancelled {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CountDispositions tallies every literal disposition value.
func CountDispositions(records []model.CallRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Disposition]++
	}
	return counts
}

// Classify sums disposition counts into taxonomy categories. Dispositions
// outside the taxonomy are counted but contribute to no category.
func Classify(records []model.CallRecord) model.Breakdown {
	counts := CountDispositions(records)
	breakdown := make(model.Breakdown)

	for _, c := range taxonomy {
		tally := model.CategoryTally{Dispositions: make(map[string]int)}
		for _, d := range c.Dispositions {
			if n := counts[d]; n > 0 {
				tally.Dispositions[d] = n
				tally.Total += n
			}
		}
		if tally.Total > 0 {
			breakdown[c.Name] = tally
		}
	}
	return breakdown
}

// Summarize runs the full overview pipeline on freshly loaded records.
func Summarize(records []model.CallRecord) model.Summary {
	working := WorkingSet(records)
	unmapped := make(map[string]int)
	for d, n := range CountDispositions(working) {
		if !IsMapped(d) {
			unmapped[d] = n
		}
	}
	return model.Summary{
		Rows:      len(working),
		Breakdown: Classify(working),
		Unmapped:  unmapped,
	}
}

// Ranked orders a breakdown for display: categories by total descending,
// dispositions within a category by count descending. Ties fall back to
// taxonomy order.
func Ranked(b model.Breakdown) []model.RankedCategory {
	var out []model.RankedCategory
	for _, c := range taxonomy {
		tally, ok := b[c.Name]
		if !ok {
			continue
		}
		rc := model.RankedCategory{Name: c.Name, Total: tally.Total}
		for _, d := range c.Dispositions {
			if n, ok := tally.Dispositions[d]; ok {
				rc.Dispositions = append(rc.Dispositions, model.DispositionCount{Disposition: d, Count: n})
			}
		}
		sort.SliceStable(rc.Dispositions, func(i, j int) bool {
			return rc.Dispositions[i].Count > rc.Dispositions[j].Count
		})
		out = append(out, rc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
