package lander

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(testRuntime(seed), config.DefaultLanderConfig())
	if g.Stage() == nil {
		t.Fatalf("level setup failed: %v", g.setupErr)
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// settleOnPad places the vehicle just touching the pad, at rest and upright.
func settleOnPad(g *Game) {
	st := g.Stage()
	body := st.Vehicle()
	padTop := st.Zone.TopY - st.Entities.Pad.Height
	body.SetPosition(core.V(st.Zone.CenterX, padTop-st.Entities.Vehicle.Height/2+0.5))
	body.SetVelocity(core.V(0, 0))
	body.SetAngle(0)
	body.SetAngularVelocity(0)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%3 == 0 {
			inputs[i].Set(core.ActionThrust)
		}
		if i%40 == 0 {
			inputs[i].Set(core.ActionRotateRight)
		}
	}

	run := func() (*Game, core.GameState) {
		g := newTestGame(t, 12345)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
		}
		return g, state
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.Flight().Status != g2.Flight().Status || g1.Flight().Fuel != g2.Flight().Fuel {
		t.Errorf("flights differ: %+v vs %+v", g1.Flight(), g2.Flight())
	}
	if g1.Stage().Vehicle().Position() != g2.Stage().Vehicle().Position() {
		t.Errorf("vehicle positions differ: %v vs %v",
			g1.Stage().Vehicle().Position(), g2.Stage().Vehicle().Position())
	}
	if len(g1.Stage().Profile) != len(g2.Stage().Profile) {
		t.Error("terrain differs for the same seed")
	}
}

func TestGameSetup(t *testing.T) {
	g := newTestGame(t, 7)
	st := g.Stage()

	if st.Number != 1 || g.Flight().Status != StatusPlaying || g.Flight().Fuel != 100 {
		t.Errorf("unexpected start: level %d flight %+v", st.Number, g.Flight())
	}
	if st.FieldW != 640 || st.FieldH != 368 {
		t.Errorf("field = %gx%g, expected 640x368", st.FieldW, st.FieldH)
	}
	if st.Report.Built != len(st.Segments) || st.Report.Attempted != len(st.Segments) {
		t.Errorf("report %+v for %d segments", st.Report, len(st.Segments))
	}
	// Terrain bodies + pad + vehicle
	if got, want := len(st.World.Bodies()), len(st.Segments)+2; got != want {
		t.Errorf("world has %d bodies, expected %d", got, want)
	}
	if st.Entities.Count() != len(st.World.Bodies()) {
		t.Errorf("arena tags %d bodies, world has %d", st.Entities.Count(), len(st.World.Bodies()))
	}
	if g.Telemetry().Altitude <= 0 {
		t.Error("vehicle should start above the ground")
	}
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("unexpected state %+v", g.State())
	}
}

func TestGameFreeFallCrashes(t *testing.T) {
	g := newTestGame(t, 3)
	lives := g.board.Lives

	for i := 0; i < 3000 && !g.Flight().Status.IsTerminal(); i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.Flight().Status.IsCrash() {
		t.Fatalf("free fall should crash, got %v", g.Flight().Status)
	}
	if g.board.Lives != lives-1 {
		t.Errorf("lives = %d, expected %d", g.board.Lives, lives-1)
	}

	records := g.DrainFlights()
	if len(records) != 1 || records[0].Level != 1 || records[0].Status != g.Flight().Status.String() {
		t.Errorf("unexpected flight records: %+v", records)
	}
	if len(g.DrainFlights()) != 0 {
		t.Error("DrainFlights should empty the queue")
	}

	// Further ticks without input change nothing
	before := g.Stage().Vehicle().Position()
	g.Step(core.NewInputFrame())
	if g.Stage().Vehicle().Position() != before {
		t.Error("vehicle moved after the attempt ended")
	}

	g.Step(input(core.ActionRestart))
	if g.Flight().Status != StatusPlaying || g.Stage().Number != 1 {
		t.Errorf("restart should retry level 1, got %v on level %d", g.Flight().Status, g.Stage().Number)
	}
}

func TestGameLandingAdvancesLevels(t *testing.T) {
	g := newTestGame(t, 11)

	settleOnPad(g)
	g.Step(core.NewInputFrame())
	if g.Flight().Status != StatusLanded {
		t.Fatalf("expected landing, got %v (speed %g)", g.Flight().Status, g.Stage().Vehicle().Speed())
	}
	if g.State().Score != 1100 {
		t.Errorf("score = %d, expected 1100", g.State().Score)
	}

	g.Step(input(core.ActionConfirm))
	if g.Stage().Number != 2 || g.Flight().Status != StatusPlaying || g.Flight().Fuel != 80 {
		t.Fatalf("expected level 2 with 80 fuel, got level %d %+v", g.Stage().Number, g.Flight())
	}
	if g.Stage().Zone.ConfiguredWidth != 60 {
		t.Errorf("level 2 pad width = %g, expected 60", g.Stage().Zone.ConfiguredWidth)
	}

	settleOnPad(g)
	g.Step(core.NewInputFrame())
	g.Step(input(core.ActionConfirm))

	if !g.Complete() || !g.State().GameOver {
		t.Error("landing the last level should complete the campaign")
	}
	if g.State().Score != 1100+800+200 {
		t.Errorf("score = %d, expected %d", g.State().Score, 1100+800+200)
	}
}

func TestGameFuelExhaustion(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	cfg.Levels[0].InitialFuel = 0.15

	g := New()
	g.ResetWithConfig(testRuntime(5), cfg)

	g.Step(input(core.ActionThrust))
	if g.Flight().Status != StatusPlaying {
		t.Fatalf("should still be flying with %g fuel", g.Flight().Fuel)
	}
	g.Step(input(core.ActionThrust))
	if g.Flight().Status != StatusCrashedFuel || g.Flight().Fuel != 0 {
		t.Errorf("expected crashed-fuel with 0 fuel, got %+v", g.Flight())
	}
}

func TestGameOutOfLives(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	cfg.Gameplay.Lives = 1

	g := New()
	g.ResetWithConfig(testRuntime(9), cfg)
	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver || g.Complete() {
		t.Errorf("losing the last life should end the run, state %+v", g.State())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.Stage().Vehicle().Position()

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Step(core.NewInputFrame())
	if g.Stage().Vehicle().Position() != before {
		t.Error("vehicle moved while paused")
	}
	g.Step(input(core.ActionPause))
	g.Step(core.NewInputFrame())
	if g.Stage().Vehicle().Position() == before {
		t.Error("vehicle should fall after unpausing")
	}
}

func TestGameMissingReferencesAreNoOps(t *testing.T) {
	g := New()
	res := g.Step(input(core.ActionThrust))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("unexpected state from an unset game: %+v", res.State)
	}

	small := New()
	small.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1}, config.DefaultLanderConfig())
	if small.Stage() != nil {
		t.Fatal("tiny terminal should not build a level")
	}
	small.Step(input(core.ActionThrust))

	screen := core.NewScreen(20, 8)
	small.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("tiny terminal should explain itself")
	}
}

func TestGameResize(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1}, config.DefaultLanderConfig())
	g.Resize(testRuntime(1))
	if g.Stage() == nil {
		t.Fatal("growing a tiny terminal should build the level")
	}
	if g.Stage().FieldW != 640 {
		t.Errorf("field width = %g, expected 640", g.Stage().FieldW)
	}

	g.Step(input())
	stage := g.Stage()
	g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: 9})
	if g.Stage() != stage {
		t.Error("resizing mid-flight should keep the current level")
	}
}

func TestGameControls(t *testing.T) {
	g := newTestGame(t, 2)

	g.Step(input(core.ActionThrust, core.ActionLateralRight))
	if got := g.Flight().Fuel; got != 100-2*g.cfg.Controls.FuelBurn {
		t.Errorf("fuel = %g after two engines fired once", got)
	}
	if !g.engines.Main || !g.engines.Right || g.engines.Left {
		t.Errorf("unexpected engines %+v", g.engines)
	}

	g.Step(input(core.ActionRotateRight))
	if g.Stage().Vehicle().AngularVelocity() <= 0 {
		t.Error("rotating right should spin clockwise")
	}
	if got := g.Flight().Fuel; got != 100-2*g.cfg.Controls.FuelBurn {
		t.Errorf("rotation should not burn fuel, fuel = %g", got)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 4)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"FUEL", "ALT", "LIVES", string(PadChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	settleOnPad(g)
	g.Stage().Vehicle().SetVelocity(core.V(0, 50))
	g.Step(core.NewInputFrame())
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "CRASHED") || !strings.Contains(out, "too fast") {
		t.Errorf("expected speed crash overlay, got:\n%s", out)
	}
}

func TestEndlessMode(t *testing.T) {
	g := NewEndless()
	g.ResetWithConfig(testRuntime(21), config.DefaultLanderConfig())
	if g.ID() != "lander_endless" || g.Stage() == nil {
		t.Fatalf("endless setup failed: %v", g.setupErr)
	}

	for level := 1; level <= 5; level++ {
		if g.Stage().Number != level {
			t.Fatalf("expected level %d, got %d", level, g.Stage().Number)
		}
		settleOnPad(g)
		g.Step(core.NewInputFrame())
		if g.Flight().Status != StatusLanded {
			t.Fatalf("level %d: expected landing, got %v", level, g.Flight().Status)
		}
		g.Step(input(core.ActionConfirm))
	}
	if g.Complete() || g.State().GameOver {
		t.Error("endless mode never completes")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"lander", "lander_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q) returned game %q", id, g.ID())
		}
	}
}

func TestStageKeepsVehicleInField(t *testing.T) {
	g := newTestGame(t, 3)
	st := g.Stage()
	body := st.Vehicle()
	half := st.Entities.Vehicle.Width / 2

	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"left wall", -40, half},
		{"right wall", st.FieldW + 40, st.FieldW - half},
		{"inside", st.FieldW / 2, st.FieldW / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body.SetPosition(core.V(tc.x, 50))
			body.SetVelocity(core.V(-7, 3))
			st.KeepInField()

			if got := body.Position().X; got != tc.wantX {
				t.Errorf("x = %g, expected %g", got, tc.wantX)
			}
			wantVX := -7.0
			if tc.x != tc.wantX {
				wantVX = 0
			}
			if v := body.Velocity(); v.X != wantVX || v.Y != 3 {
				t.Errorf("velocity = %+v, expected (%g, 3)", v, wantVX)
			}
		})
	}
}
