package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return "Stub " + g.id
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	r := New()
	r.Register("b", stub("b"))
	r.Register("a", stub("a"))

	if !r.Exists("a") || r.Exists("c") {
		t.Fatal("Exists() disagrees with registrations")
	}

	g, err := r.Create("b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	list := r.List()
	want := []GameInfo{{ID: "a", Title: "Stub a"}, {ID: "b", Title: "Stub b"}}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, expected %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %v, expected %v", i, list[i], want[i])
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := New().Create("missing")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("dup", stub("dup"))
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	r.Register("dup", stub("dup"))
}

func TestDefaultRegistry(t *testing.T) {
	Register("zz_default", stub("zz_default"))
	if !Exists("zz_default") {
		t.Fatal("package-level Register should use the default registry")
	}
	if _, err := Create("zz_default"); err != nil {
		t.Errorf("Create() failed: %v", err)
	}
	if len(List()) == 0 {
		t.Error("List() should include registered games")
	}
}
