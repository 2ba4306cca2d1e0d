package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagRecent int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and flight stats",
	Long: `Display the top 10 high scores, flight statistics and recent
flights for the specified mode (campaign when omitted).

Examples:
  lander scores
  lander scores lander_endless
  lander scores --recent 20
  lander scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent flights to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and flights of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "lander"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores and flights for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lander play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		fmt.Println()
		if highScore, err := store.HighScore(gameID); err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	printFlights(store, gameID)
}

// printFlights shows aggregate stats and the most recent attempts.
func printFlights(store *storage.Store, gameID string) {
	stats, err := store.GetFlightStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving flight stats: %v\n", err)
		return
	}
	if stats.Flights == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Flights: %d  Landed: %d (%.0f%%)  Best fuel: %.1f  Time flown: %ds\n",
		stats.Flights, stats.Landings, stats.LandingRate()*100, stats.BestFuel, stats.TotalTicks/int64(max(flagFPS, 1)))
	statuses := make([]string, 0, len(stats.ByStatus))
	for status := range stats.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		fmt.Printf("  %-18s %d\n", status, stats.ByStatus[status])
	}

	if flagRecent <= 0 {
		return
	}
	recent, err := store.RecentFlights(gameID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving flights: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent flights:")
	for _, f := range recent {
		line := fmt.Sprintf("  %s  level %-2d  %-16s  fuel %5.1f", f.CreatedAt.Format("2006-01-02 15:04"), f.Level, f.Status, f.Fuel)
		if f.SpeedCrash {
			line += fmt.Sprintf("  speed %.1f > %.1f", f.CrashSpeed, f.CrashLimit)
		}
		fmt.Println(line)
	}
}
