package models

type Milestone struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type GoalCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

type Goal struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CategoryID  string      `json:"category_id"`
	Milestones  []Milestone `json:"milestones"`
}

// Progress returns the fraction of completed milestones in [0, 1].
// It is derived on read and never stored.
func (g Goal) Progress() float64 {
	if len(g.Milestones) == 0 {
		return 0
	}
	done := 0
	for _, m := range g.Milestones {
		if m.Completed {
			done++
		}
	}
	return float64(done) / float64(len(g.Milestones))
}
