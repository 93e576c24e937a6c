package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nish-b/found-call-explorer/model"
)

func records(dispositions ...string) []model.CallRecord {
	out := make([]model.CallRecord, len(dispositions))
	for i, d := range dispositions {
		out[i] = model.CallRecord{Disposition: d}
	}
	return out
}

func TestWorkingSet_DropsCancelled(t *testing.T) {
	in := records("Left Voicemail", "cancelled", "No Answer", "cancelled", "Cancelled")
	got := WorkingSet(in)

	require.Len(t, got, 3)
	assert.Equal(t, "Left Voicemail", got[0].Disposition)
	assert.Equal(t, "No Answer", got[1].Disposition)
	// only the exact lowercase sentinel is noise
	assert.Equal(t, "Cancelled", got[2].Disposition)
}

func TestClassify_Example(t *testing.T) {
	working := WorkingSet(records("Left Voicemail", "cancelled", "No Answer", "Left Voicemail"))
	require.Len(t, working, 3)

	got := Classify(working)
	want := model.Breakdown{
		"Voicemail": {
			Dispositions: map[string]int{"Left Voicemail": 2},
			Total:        2,
		},
		"No Contact": {
			Dispositions: map[string]int{"No Answer": 1},
			Total:        1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_UnmappedDispositionsAreExcluded(t *testing.T) {
	working := records("Left Voicemail", "Callback Scheduled", "Callback Scheduled", "no answer")
	got := Classify(working)

	total := 0
	for _, tally := range got {
		total += tally.Total
		_, ok := tally.Dispositions["Callback Scheduled"]
		assert.False(t, ok, "unmapped disposition leaked into a category")
	}
	assert.Equal(t, 2, total)
	assert.Less(t, total, len(working))
}

func TestClassify_OmitsEmptyCategories(t *testing.T) {
	got := Classify(records("Hook Rejected"))

	require.Len(t, got, 1)
	assert.Equal(t, 1, got["Busy/DNC"].Total)
	assert.Len(t, got["Busy/DNC"].Dispositions, 1)
}

func TestClassify_CaseVariantsShareCategory(t *testing.T) {
	got := Classify(records("No Answer", "no answer", "no answer"))

	assert.Equal(t, 3, got["No Contact"].Total)
	assert.Equal(t, map[string]int{"No Answer": 1, "no answer": 2}, got["No Contact"].Dispositions)
}

func TestClassify_Idempotent(t *testing.T) {
	in := records("Left Voicemail", "Wrong Phone #", "No Disposition", "Left Voicemail", "Unknown")

	first := Classify(in)
	second := Classify(in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Classify() not idempotent (-first +second):\n%s", diff)
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	a := Classify(records("Left Voicemail", "No Answer", "Hook Rejected", "Left Voicemail"))
	b := Classify(records("Hook Rejected", "Left Voicemail", "Left Voicemail", "No Answer"))
	assert.True(t, cmp.Equal(a, b))
}

func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, Classify(nil))
}

func TestSummarize(t *testing.T) {
	in := records("Left Voicemail", "cancelled", "Callback Scheduled", "No Answer", "cancelled")
	s := Summarize(in)

	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, map[string]int{"Callback Scheduled": 1}, s.Unmapped)
	assert.Equal(t, 1, s.Breakdown["Voicemail"].Total)
	assert.Equal(t, 1, s.Breakdown["No Contact"].Total)
	_, ok := s.Breakdown["No Contact"].Dispositions[Cancelled]
	assert.False(t, ok)
}

func TestRanked(t *testing.T) {
	b := Classify(records(
		"No Answer",
		"Left Voicemail", "Left Voicemail", "went to voicemail", "went to voicemail", "went to voicemail",
		"Hook Rejected", "Do Not Disturb - DNC",
	))

	got := Ranked(b)
	want := []model.RankedCategory{
		{Name: "Voicemail", Total: 5, Dispositions: []model.DispositionCount{
			{Disposition: "went to voicemail", Count: 3},
			{Disposition: "Left Voicemail", Count: 2},
		}},
		{Name: "Busy/DNC", Total: 2, Dispositions: []model.DispositionCount{
			{Disposition: "Do Not Disturb - DNC", Count: 1},
			{Disposition: "Hook Rejected", Count: 1},
		}},
		{Name: "No Contact", Total: 1, Dispositions: []model.DispositionCount{
			{Disposition: "No Answer", Count: 1},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ranked() mismatch (-want +got):\n%s", diff)
	}
}

func TestTaxonomy_ReturnsCopy(t *testing.T) {
	tax := Taxonomy()
	require.NotEmpty(t, tax)
	tax[0].Dispositions[0] = "mutated"
	tax[0].Name = "mutated"

	again := Taxonomy()
	assert.Equal(t, "No Contact", again[0].Name)
	assert.Equal(t, "cancelled", again[0].Dispositions[0])
}

func TestIsMapped(t *testing.T) {
	assert.True(t, IsMapped("Wrong Phone #"))
	assert.True(t, IsMapped("Answered - Wrong Person, No Referral"))
	assert.False(t, IsMapped("wrong phone #"))
	assert.False(t, IsMapped(""))
}
