package analysis

import "github.com/nish-b/found-call-explorer/model"

// Cancelled is the disposition treated as noise; those rows never reach
// the breakdown.
const Cancelled = "cancelled"

var taxonomy = []model.Category{
	{Name: "No Contact", Dispositions: []string{"cancelled", "No Answer", "no answer"}},
	{Name: "Voicemail", Dispositions: []string{"Left Voicemail", "went to voicemail"}},
	{Name: "Connected - Feedback", Dispositions: []string{
		"Answered - Connected - Business Has Not Started Yet",
		"Answered - Connected - Enjoys Found",
	}},
	{Name: "Connected - Questions", Dispositions: []string{
		"Answered - Connected - Feature Exploration/Request",
		"Answered - Connected - Funding Questions",
		"Answered - Connected - Credit / Lending Interest",
		"Answered - Connected - No Questions",
		"Answered - Connected - Integration (3rd Party) Questions",
		"Answered - Provided Found Overview",
	}},
	{Name: "Connected - Technical", Dispositions: []string{
		"Answered - Connected - Activation Issues",
		"Answered - Connected - Technical Issues",
	}},
	{Name: "Wrong Contact", Dispositions: []string{
		"Answered - Wrong Person, Gave Referral",
		"Answered - Wrong Person, No Referral",
		"Wrong Phone #",
	}},
	{Name: "Busy/DNC", Dispositions: []string{
		"Busy Call Later / Send Follow Up",
		"Do Not Disturb - DNC",
		"Busy - Call Later",
		"Hook Rejected",
	}},
	{Name: "Other", Dispositions: []string{"No Disposition"}},
}

// Taxonomy returns a copy of the fixed category taxonomy in display order.
func Taxonomy() []model.Category {
	out := make([]model.Category, len(taxonomy))
	for i, c := range taxonomy {
		out[i] = model.Category{
			Name:         c.Name,
			Dispositions: append([]string(nil), c.Dispositions...),
		}
	}
	return out
}

// IsMapped reports whether any category claims the disposition.
func IsMapped(disposition string) bool {
	for _, c := range taxonomy {
		for _, d := range c.Dispositions {
			if d == disposition {
				return true
			}
		}
	}
	return false
}
