package leveling

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{100, 1},
		{101, 2},
		{250, 2},
		{251, 3},
		{450, 3},
		{451, 4},
		{1000, 5},
		{1001, 6},
		{10450, 19},
		{10451, 20},
		{999999, 20},
	}

	for _, tt := range tests {
		got := LevelForXP(tt.xp)
		if got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXPNonDecreasing(t *testing.T) {
	prev := 1
	for xp := 0; xp <= 12000; xp++ {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("LevelForXP(%d) = %d, below previous level %d", xp, level, prev)
		}
		prev = level
	}
}

func TestFloorRoundTrip(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		if got := LevelForXP(XPFloorForLevel(level)); got != level {
			t.Errorf("LevelForXP(XPFloorForLevel(%d)) = %d, want %d", level, got, level)
		}
	}
}

func TestXPCeilingForLevel(t *testing.T) {
	if got := XPCeilingForLevel(1); got != 101 {
		t.Errorf("XPCeilingForLevel(1) = %d, want 101", got)
	}
	if got := XPCeilingForLevel(MaxLevel); got != XPFloorForLevel(MaxLevel) {
		t.Errorf("XPCeilingForLevel(MaxLevel) = %d, want floor %d", got, XPFloorForLevel(MaxLevel))
	}
}

func TestTitleForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Novice"},
		{3, "Novice"},
		{4, "Explorer"},
		{7, "Explorer"},
		{8, "Champion"},
		{12, "Champion"},
		{13, "Master"},
		{16, "Master"},
		{17, "Legend"},
		{20, "Legend"},
	}

	for _, tt := range tests {
		if got := TitleForLevel(tt.level); got != tt.want {
			t.Errorf("TitleForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	if p := LevelProgress(0); p != 0 {
		t.Errorf("LevelProgress(0) = %v, want 0", p)
	}
	if p := LevelProgress(50); p <= 0 || p >= 1 {
		t.Errorf("LevelProgress(50) = %v, want in (0,1)", p)
	}
	if p := LevelProgress(999999); p != 1 {
		t.Errorf("LevelProgress at max level = %v, want 1", p)
	}
}
