package loop

import (
	"testing"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
)

func TestSceneNodes(t *testing.T) {
	s := NewScene()
	a, b := testPickup(), testPickup()
	s.AddNode(a)
	s.AddNode(a)
	s.AddNode(b)
	s.AddNode(nil)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	s.RemoveNode(a)
	s.RemoveNode(a)
	if s.Len() != 1 {
		t.Errorf("Len after remove = %d", s.Len())
	}
	s.Reset()
	if s.Len() != 0 || s.Room() != nil {
		t.Error("Reset left state behind")
	}
}

func TestSceneDraw(t *testing.T) {
	layout, err := dungeon.Build(testDefinition, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.UpdateBoard(layout.Start())
	s.AddNode(entity.NewMelee(100, 100, 0))
	s.AddNode(testPickup())

	c := draw.NewScaledCanvas(60, 40, config.ArenaWidth, config.ArenaHeight)
	if err := s.Draw(entity.DrawContext{Canvas: c}); err != nil {
		t.Fatal(err)
	}
	if s.Room() != layout.Start() {
		t.Error("background room not kept")
	}
}

func TestMinimapLines(t *testing.T) {
	layout, err := dungeon.Build(testDefinition, nil)
	if err != nil {
		t.Fatal(err)
	}
	start := layout.Start()
	start.Visited = true
	layout.Room(1, 0).Visited = true

	got := minimapLines(layout, start)
	want := []string{
		"┌────┐",
		"│ ? ?│",
		"│#@??│",
		"│ ? ?│",
		"└────┘",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	layout.Boss().Visited = true
	if lines := minimapLines(layout, start); lines[3] != "│ B ?│" {
		t.Errorf("visited boss shown as %q", lines[3])
	}
}
