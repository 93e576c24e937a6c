package model

// Category groups related disposition labels for summary reporting.
type Category struct {
	Name         string
	Dispositions []string
}

// CategoryTally holds the counts for one category of the breakdown.
type CategoryTally struct {
	Dispositions map[string]int // only dispositions with count > 0
	Total        int
}

// Breakdown maps category name to its tally. Categories with a zero total
// are never present.
type Breakdown map[string]CategoryTally

// Summary is everything the overview needs from one load.
type Summary struct {
	Rows      int            // working set size, the percentage base
	Breakdown Breakdown      // taxonomy categories with a nonzero total
	Unmapped  map[string]int // dispositions no category claims
}

// DispositionCount is one disposition line of a ranked category.
type DispositionCount struct {
	Disposition string
	Count       int
}

// RankedCategory is a category with its dispositions in display order.
type RankedCategory struct {
	Name         string
	Total        int
	Dispositions []DispositionCount
}

// Keyword is one entry of a keyword frequency list.
type Keyword struct {
	Word  string
	Count int
}
