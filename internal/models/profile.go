package models

// UserProfile holds the gamification counters. XP never persists at or
// above XPToNextLevel; level-ups are applied immediately on award.
type UserProfile struct {
	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xp_to_next_level"`
}
