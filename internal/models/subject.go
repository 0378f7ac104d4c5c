package models

// Subject groups tasks (e.g. Academics, Personal). Task.SubjectID is a soft
// reference: deleting a subject does not cascade to its tasks.
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}
