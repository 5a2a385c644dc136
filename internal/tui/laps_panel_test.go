package tui

import (
	"strings"
	"testing"
)

func TestLapsPanel_Empty(t *testing.T) {
	p := NewLapsPanel()

	if len(p.Lines()) != 0 {
		t.Errorf("expected no lines, got %v", p.Lines())
	}
	if !strings.Contains(p.View(), "No laps yet") {
		t.Errorf("empty panel should show placeholder:\n%s", p.View())
	}
}

func TestLapsPanel_Lines(t *testing.T) {
	p := NewLapsPanel()
	p.SetLaps([]int{3, 65, 600})

	want := []string{"Lap 1: 0:03", "Lap 2: 1:05", "Lap 3: 10:00"}
	got := p.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLapsPanel_FollowsNewestLap(t *testing.T) {
	p := NewLapsPanel()
	p.SetSize(30, 5) // 3 visible lines

	laps := []int{}
	for i := 1; i <= 10; i++ {
		laps = append(laps, i)
		p.SetLaps(laps)
	}

	if !p.AtBottom() {
		t.Error("panel should scroll to the newest lap")
	}
	if !strings.Contains(p.View(), "Lap 10: 0:10") {
		t.Errorf("newest lap should be visible:\n%s", p.View())
	}
}

func TestLapsPanel_ResetClears(t *testing.T) {
	p := NewLapsPanel()
	p.SetLaps([]int{1, 2})
	p.SetLaps([]int{})

	if len(p.Lines()) != 0 {
		t.Error("reset should clear lines")
	}
}
