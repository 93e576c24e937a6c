package model

// CallRecord is one row of a call export.
type CallRecord struct {
	Disposition string // outcome label, required column
	Note        string // free-text note, empty when absent
}

// HasNote reports whether the record carries a note.
func (r CallRecord) HasNote() bool {
	return r.Note != ""
}
