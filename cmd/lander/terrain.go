package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
)

var (
	flagPreviewW    int
	flagPreviewH    int
	flagPreviewYAML bool
)

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Preview generated terrain",
	Long: `Generate a level without flying it and print it.

By default the level is drawn as it would appear in the game.
With --yaml the terrain profile, landing zone and ground segments
are printed in world units instead.

Examples:
  lander terrain --seed 42
  lander terrain --seed 42 --level 3 --width 120 --height 40
  lander terrain --seed 7 --yaml > level.yaml`,
	Run: runTerrain,
}

func init() {
	addConfigFlags(terrainCmd)
	terrainCmd.Flags().IntVar(&flagLevel, "level", 1, "Campaign level to generate")
	terrainCmd.Flags().IntVar(&flagPreviewW, "width", 80, "Screen width in cells")
	terrainCmd.Flags().IntVar(&flagPreviewH, "height", 24, "Screen height in cells")
	terrainCmd.Flags().BoolVar(&flagPreviewYAML, "yaml", false, "Print terrain data as YAML")
}

type zoneDump struct {
	CenterX       float64 `yaml:"center_x"`
	PadWidth      float64 `yaml:"pad_width"`
	PhysicalWidth float64 `yaml:"physical_width"`
	TopY          float64 `yaml:"top_y"`
}

type segmentDump struct {
	Index    int          `yaml:"index"`
	Vertices [][2]float64 `yaml:"vertices,flow"`
}

type terrainDump struct {
	Seed     int64         `yaml:"seed"`
	Level    int           `yaml:"level"`
	FieldW   float64       `yaml:"field_w"`
	FieldH   float64       `yaml:"field_h"`
	Zone     zoneDump      `yaml:"zone"`
	Profile  [][2]float64  `yaml:"profile,flow"`
	Segments []segmentDump `yaml:"segments"`
	Skipped  int           `yaml:"skipped_segments"`
}

func runTerrain(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:  flagPreviewW,
		ScreenH:  flagPreviewH,
		TickRate: flagFPS,
		Seed:     seed,
	}

	lander.SetStartLevel(flagLevel)
	game := lander.New()
	game.ResetWithConfig(runtime, cfg)

	st := game.Stage()
	if st == nil {
		fmt.Fprintf(os.Stderr, "Error: cannot build level %d at %dx%d\n", flagLevel, flagPreviewW, flagPreviewH)
		os.Exit(1)
	}

	if !flagPreviewYAML {
		screen := core.NewScreen(flagPreviewW, flagPreviewH)
		game.Render(screen)
		fmt.Println(screen.String())
		fmt.Printf("seed %d  level %d  pad x %.0f  segments %d\n", seed, st.Number, st.Zone.CenterX, st.Report.Built)
		return
	}

	dump := terrainDump{
		Seed:   seed,
		Level:  st.Number,
		FieldW: st.FieldW,
		FieldH: st.FieldH,
		Zone: zoneDump{
			CenterX:       st.Zone.CenterX,
			PadWidth:      st.Zone.ConfiguredWidth,
			PhysicalWidth: st.Zone.PhysicalWidth(cfg.Vehicle.Width, cfg.Terrain.Buffer),
			TopY:          st.Zone.TopY,
		},
		Skipped: st.Report.Skipped(),
	}
	for _, p := range st.Profile {
		dump.Profile = append(dump.Profile, [2]float64{p.X, p.Y})
	}
	for _, seg := range st.Segments {
		sd := segmentDump{Index: seg.Index}
		for _, v := range seg.Vertices {
			sd.Vertices = append(sd.Vertices, [2]float64{v.X, v.Y})
		}
		dump.Segments = append(dump.Segments, sd)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding terrain: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
