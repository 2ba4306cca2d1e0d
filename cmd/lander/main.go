// lander is a lunar lander game for the terminal.
//
// Usage:
//
//	lander list              - List available modes
//	lander play [mode]       - Fly a mode (campaign by default)
//	lander menu              - Start menu to pick modes interactively
//	lander serve             - Start SSH server for remote play
//	lander scores [mode]     - Show high scores and flight stats
//	lander levels            - Show the configured campaign levels
//	lander terrain           - Preview generated terrain
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.lander/lander.db)
//	--log <path>    - Write game diagnostics to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool

	// Game config flags shared by play, menu, levels and terrain
	flagConfig     string
	flagDifficulty string
)

var logFile *os.File

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "TUI Lander - Land on the moon in your terminal",
	Long: `TUI Lander is a physics lander game for the terminal.
Fly the vehicle down onto the flat pad slowly and upright before the fuel runs out.

Available commands:
  list     - Show all available modes
  play     - Fly a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and flight stats
  levels   - Show the configured campaign levels
  terrain  - Preview generated terrain

Examples:
  lander play
  lander play lander_endless --difficulty hard
  lander menu
  lander serve --ssh :2222
  lander terrain --seed 42`,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game diagnostics to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Include debug diagnostics in the log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(terrainCmd)
}

// addConfigFlags registers the game config flags on a command.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// setupLogging routes game diagnostics to the --log file. The terminal belongs to the TUI.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	lander.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
		Level:           level,
	}))
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// applyGameFlags passes config flags to the game package before creation.
func applyGameFlags() error {
	if !validPreset(flagDifficulty) {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	lander.SetConfigPath(flagConfig)
	lander.SetDifficultyPreset(flagDifficulty)
	return nil
}

// loadConfig loads the lander config the same way the game does.
func loadConfig() (config.LanderConfig, error) {
	if !validPreset(flagDifficulty) {
		return config.LanderConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.LoadLander(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyLanderPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	return cfg, nil
}

func validPreset(p string) bool {
	switch config.DifficultyPreset(p) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return true
	}
	return false
}
