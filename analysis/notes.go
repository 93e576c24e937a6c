package analysis

import "github.com/nish-b/found-call-explorer/model"

// MaxNotes caps how many notes a disposition detail shows.
const MaxNotes = 100

// NotesFor returns up to MaxNotes non-empty notes of the given disposition,
// in record order.
func NotesFor(records []model.CallRecord, disposition string) []string {
	var notes []string
	for _, r := range records {
		if r.Disposition != disposition || !r.HasNote() {
			continue
		}
		notes = append(notes, r.Note)
		if len(notes) == MaxNotes {
			break
		}
	}
	return notes
}
