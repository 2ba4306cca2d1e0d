package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagLevelsYAML bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the configured campaign levels",
	Long: `Print the campaign levels after config loading and difficulty presets.

The config is searched in this order: --config, ~/.lander/configs/lander.yaml,
./configs/lander.yaml, then the built-in defaults. With --yaml the complete
effective config is printed, ready to be edited and passed back with --config.

Examples:
  lander levels
  lander levels --difficulty hard
  lander levels --yaml > my-lander.yaml`,
	Run: runLevels,
}

func init() {
	addConfigFlags(levelsCmd)
	levelsCmd.Flags().BoolVar(&flagLevelsYAML, "yaml", false, "Print the effective config as YAML")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagLevelsYAML {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	fmt.Printf("Lives: %d  Vehicle: %gx%g  Gravity: %g\n",
		cfg.Gameplay.Lives, cfg.Vehicle.Width, cfg.Vehicle.Height, cfg.Physics.Gravity)
	fmt.Println()

	fmt.Printf("  %-5s  %-9s  %-7s  %-6s  %s\n", "Level", "Pad width", "Pad x", "Fuel", "Max speed")
	fmt.Printf("  %-5s  %-9s  %-7s  %-6s  %s\n", "-----", "---------", "-----", "----", "---------")
	for i, l := range cfg.Levels {
		fmt.Printf("  %-5d  %-9.0f  %-7.2f  %-6.0f  %.1f\n", i+1, l.PadWidth, l.PadXFactor, l.InitialFuel, l.MaxLandingSpeed)
	}
}
