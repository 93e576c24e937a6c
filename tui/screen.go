package tui

// screen is what the explorer shows once records are loaded: the category
// overview, or the detail of one disposition.
type screen struct {
	disposition string
	detail      bool
}

func overviewScreen() screen {
	return screen{}
}

func detailScreen(disposition string) screen {
	return screen{disposition: disposition, detail: true}
}

// selected returns the disposition shown in detail, if any.
func (s screen) selected() (string, bool) {
	return s.disposition, s.detail
}
