package progress

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{199, 1},
		{200, 2},
		{599, 2},
		{600, 3},
		{1199, 3},
		{1200, 4},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestSnapshotFor(t *testing.T) {
	s := SnapshotFor(1050)
	if s.Level != 3 {
		t.Fatalf("Level = %d, want 3", s.Level)
	}
	if s.XPIntoLevel != 450 {
		t.Errorf("XPIntoLevel = %d, want 450", s.XPIntoLevel)
	}
	if s.XPForNextLevel != 600 {
		t.Errorf("XPForNextLevel = %d, want 600", s.XPForNextLevel)
	}
	if s.Title != TitleFor(3) {
		t.Errorf("Title = %q", s.Title)
	}
}

func TestTitleFor_Bounds(t *testing.T) {
	if TitleFor(0) != titles[0] {
		t.Error("level 0 should use first title")
	}
	if TitleFor(99) != titles[len(titles)-1] {
		t.Error("high levels should use last title")
	}
	if TitleFor(2) != titles[0] || TitleFor(3) != titles[1] {
		t.Error("titles change every two levels")
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first activity", 0, nil, 1},
		{"same day keeps", 4, at(-2 * time.Hour), 4},
		{"same day from zero", 0, at(-time.Hour), 1},
		{"yesterday extends", 4, at(-20 * time.Hour), 5},
		{"gap resets", 9, at(-50 * time.Hour), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.last, now); got != tt.want {
				t.Errorf("NextStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
