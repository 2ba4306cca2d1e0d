package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Scoreboard tracks score and lives across attempts.
// It changes only on status transitions out of StatusPlaying.
type Scoreboard struct {
	Score int
	Lives int

	cfg config.GameplayConfig
}

// NewScoreboard starts a run with the configured lives.
func NewScoreboard(cfg config.GameplayConfig) *Scoreboard {
	return &Scoreboard{Lives: cfg.Lives, cfg: cfg}
}

// OnTransition applies the bookkeeping for an attempt entering status to.
// A landing scores the remaining fuel plus a level bonus; a crash costs a life.
// It returns the points awarded.
func (s *Scoreboard) OnTransition(to Status, fuel float64, level int) int {
	switch {
	case to == StatusLanded:
		points := LandingScore(fuel, level, s.cfg)
		s.Score += points
		return points
	case to.IsCrash():
		if s.Lives > 0 {
			s.Lives--
		}
	}
	return 0
}

// OutOfLives reports whether the run is over.
func (s *Scoreboard) OutOfLives() bool {
	return s.Lives <= 0
}

// LandingScore is the score for landing on the given 1-based level with fuel left.
func LandingScore(fuel float64, level int, cfg config.GameplayConfig) int {
	return int(math.Round(fuel*cfg.FuelScoreMultiplier)) + level*cfg.LevelBonus
}
