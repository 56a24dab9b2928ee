package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/runngun/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

// levelGame adds the per-level and tick capabilities.
type levelGame struct{ stubGame }

func (g *levelGame) LevelID() string { return "level1" }
func (g *levelGame) Ticks() uint64   { return 0 }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	info, ok := Lookup("stub_a")
	if !ok {
		t.Fatal("Lookup(stub_a) failed after Register")
	}
	if info.Title != "Stub stub_a" {
		t.Errorf("title = %q", info.Title)
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create returned game %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := slices.Index(ids, "stub_a"), slices.Index(ids, "stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted by ID: %v", ids)
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want []string
	}{
		{"plain", &stubGame{id: "plain"}, nil},
		{"levels", &levelGame{stubGame{id: "lv"}}, []string{CapLevels, CapTicks}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Capabilities(tc.game); !slices.Equal(got, tc.want) {
				t.Errorf("Capabilities() = %v, want %v", got, tc.want)
			}
		})
	}

	Register("stub_levels", func() Game { return &levelGame{stubGame{id: "stub_levels"}} })
	info, _ := Lookup("stub_levels")
	if !slices.Equal(info.Capabilities, []string{CapLevels, CapTicks}) {
		t.Errorf("registered capabilities = %v", info.Capabilities)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create of unknown game should fail")
	}
	if _, ok := Lookup("does-not-exist"); ok {
		t.Error("Lookup of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
