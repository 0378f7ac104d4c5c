package models

// Habit represents a recurring practice to track
type Habit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color Color  `json:"color"`
	// Completions maps YYYY-MM-DD dates to true. Presence of a key means
	// the habit was completed that day; toggling off deletes the key.
	Completions map[string]bool `json:"completions"`
}
