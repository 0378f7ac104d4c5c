package store

import (
	"fmt"
	"math"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/logger"
	"github.com/studyhall/studyhall/internal/models"
)

// XPToNextLevel returns the XP threshold for leveling past the given level:
// floor(100 * 1.2^(level-1)).
func XPToNextLevel(level int) int {
	return int(math.Floor(constants.XPLevelBase * math.Pow(constants.XPLevelGrowth, float64(level-1))))
}

// Profile returns the current gamification counters.
func (s *Store) Profile() models.UserProfile {
	return s.profile
}

// AddXP grants experience points and applies any resulting level-ups
// immediately. A single large award can cascade through multiple levels.
// This is the only writer of profile state.
func (s *Store) AddXP(amount int) error {
	if amount < 0 {
		return fmt.Errorf("xp award must be non-negative, got %d", amount)
	}

	s.profile.XP += amount
	for s.profile.XP >= s.profile.XPToNextLevel {
		s.profile.XP -= s.profile.XPToNextLevel
		s.profile.Level++
		s.profile.XPToNextLevel = XPToNextLevel(s.profile.Level)
		logger.Info("Level up", "level", s.profile.Level, "next_threshold", s.profile.XPToNextLevel)
	}

	return s.saveProfile()
}
