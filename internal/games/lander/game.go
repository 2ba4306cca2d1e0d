package lander

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Fly the configured levels in order
	ModeEndless                  // Procedural levels that tighten as score grows
)

// Minimum terminal size for a playable field
const (
	MinScreenW = 40
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the 1-based campaign level to start from
var startLevel = 1

// logger receives game diagnostics. The TUI owns the terminal, so it is silent by default.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the campaign level to start from (1-based).
func SetStartLevel(level int) {
	if level < 1 {
		level = 1
	}
	startLevel = level
}

// SetLogger replaces the diagnostics logger. A nil logger restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the lander game logic.
type Game struct {
	mode GameMode

	// Current attempt
	stage   *Stage
	flight  FlightState
	engines Engines // Engines fired on the last tick

	// Run state
	board     *Scoreboard
	lastAward int
	complete  bool // Campaign finished
	gameOver  bool
	paused    bool
	tickCount int
	flown     int // Ticks in the current attempt
	records   []core.FlightRecord

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.LanderConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	setupErr       error
	screenTooSmall bool
}

// New creates a new lander game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new lander game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "lander_endless"
	}
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Lunar Lander (Endless)"
	}
	return "Lunar Lander"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadLander(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultLanderConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLanderPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.LanderConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.board = NewScoreboard(cfg.Gameplay)
	g.lastAward = 0
	g.complete = false
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.records = nil
	g.stage = nil
	g.setupErr = nil

	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	if g.screenTooSmall {
		return
	}

	number := 1
	if g.mode == ModeCampaign {
		number = core.Clamp(startLevel, 1, max(1, LevelCount(cfg)))
	}
	g.startAttempt(number)
}

// Resize adapts the game to a new terminal size.
// The field is rebuilt only while nothing has been flown yet or no level could be built;
// an active run keeps its field and is simply drawn into the new viewport.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.board == nil {
		g.Reset(runtime)
		return
	}
	if g.stage != nil && g.tickCount > 0 {
		g.runtime.ScreenW = runtime.ScreenW
		g.runtime.ScreenH = runtime.ScreenH
		return
	}
	g.ResetWithConfig(runtime, g.cfg)
}

// startAttempt builds a fresh stage for the given level and resets the flight.
func (g *Game) startAttempt(number int) {
	params, ok := g.levelParams(number)
	if !ok {
		g.complete = true
		g.gameOver = true
		return
	}

	fieldW, fieldH := FieldSize(g.cfg.Field, g.runtime.ScreenW, g.runtime.ScreenH)
	stage, err := BuildStage(g.cfg, number, params, fieldW, fieldH, g.rng, logger)
	if err != nil {
		logger.Error("level setup failed", "level", number, "err", err)
		g.setupErr = err
		g.stage = nil
		return
	}

	g.stage = stage
	g.setupErr = nil
	g.flight = NewFlightState(params.InitialFuel)
	g.engines = Engines{}
	g.flown = 0
}

// levelParams returns the parameters for a level number in the current mode.
func (g *Game) levelParams(number int) (config.LevelConfig, bool) {
	if g.mode == ModeCampaign {
		return LevelParams(g.cfg, number)
	}
	if len(g.cfg.Levels) == 0 {
		return config.LevelConfig{}, false
	}

	base := g.cfg.Levels[0]
	minPad := g.cfg.Vehicle.Width * 1.5
	params := g.difficulty.Scale(base, minPad, g.board.Score, g.tickCount)

	// Keep the flattened zone inside the field
	fieldW, _ := FieldSize(g.cfg.Field, g.runtime.ScreenW, g.runtime.ScreenH)
	if fieldW > 0 {
		half := LandingZone{ConfiguredWidth: params.PadWidth}.PhysicalWidth(g.cfg.Vehicle.Width, g.cfg.Terrain.Buffer) / 2
		lo, hi := half/fieldW, 1-half/fieldW
		params.PadXFactor = core.ClampF(0.15+0.7*g.rng.Float64(), lo, hi)
	}
	return params, true
}

// Step advances the game by one tick.
// Order: controls, physics, field bounds, contact classification, flight state, bookkeeping.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	body := g.stage.Vehicle()
	if body == nil {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.flight.Status.IsTerminal() {
		g.handleAftermath(in)
		return core.StepResult{State: g.State()}
	}

	g.flown++
	fuelDelta, engines := ApplyControls(body, in, g.flight.Fuel, g.cfg.Controls)
	g.engines = engines

	g.stage.World.Step(g.runtime.TickSeconds())
	g.stage.KeepInField()

	outcome := ClassifyVehicle(g.stage.World, g.stage.Entities, g.stage.Params.MaxLandingSpeed, MaxLandingAngle)

	prev := g.flight
	g.flight = Update(g.flight, outcome, fuelDelta)
	if to, ok := Transition(prev, g.flight); ok {
		g.onTransition(to)
	}

	return core.StepResult{State: g.State()}
}

// onTransition runs score, lives and history bookkeeping for a finished attempt.
func (g *Game) onTransition(to Status) {
	g.engines = Engines{}
	g.lastAward = g.board.OnTransition(to, g.flight.Fuel, g.stage.Number)

	rec := core.FlightRecord{
		Level:  g.stage.Number,
		Status: to.String(),
		Fuel:   g.flight.Fuel,
		Ticks:  g.flown,
	}
	if g.flight.Crash != nil {
		rec.SpeedCrash = true
		rec.CrashSpeed = g.flight.Crash.Speed
		rec.CrashLimit = g.flight.Crash.Limit
	}
	g.records = append(g.records, rec)

	logger.Info("flight ended",
		"level", g.stage.Number,
		"status", to,
		"fuel", g.flight.Fuel,
		"score", g.board.Score,
		"lives", g.board.Lives,
	)

	if to.IsCrash() && g.board.OutOfLives() {
		g.gameOver = true
	}
}

// handleAftermath waits for the player after an attempt ends.
// Confirm continues after a landing; Confirm or Restart retries after a crash.
func (g *Game) handleAftermath(in core.InputFrame) {
	switch {
	case g.flight.Status == StatusLanded && in.Has(core.ActionConfirm):
		g.startAttempt(g.stage.Number + 1)
	case g.flight.Status.IsCrash() && (in.Has(core.ActionConfirm) || in.Has(core.ActionRestart)):
		g.startAttempt(g.stage.Number)
	}
}

// Flight returns the current flight state.
func (g *Game) Flight() FlightState {
	return g.flight
}

// Stage returns the current level, or nil when setup has not succeeded.
func (g *Game) Stage() *Stage {
	return g.stage
}

// Complete reports whether every campaign level has been landed.
func (g *Game) Complete() bool {
	return g.complete
}

// DrainFlights returns the attempts finished since the last call.
func (g *Game) DrainFlights() []core.FlightRecord {
	out := g.records
	g.records = nil
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
	registry.Register("lander_endless", func() registry.Game {
		return NewEndless()
	})
}
