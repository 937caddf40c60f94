// Package leveling maps cumulative XP to levels and title bands.
package leveling

// thresholds holds the minimum XP for each level. Index i is level i+1.
var thresholds = []int{
	0, 101, 251, 451, 701, 1001, 1351, 1751, 2201, 2701,
	3251, 3851, 4501, 5201, 5951, 6751, 7601, 8501, 9451, 10451,
}

// MaxLevel is the highest defined level.
const MaxLevel = 20

// LevelForXP returns the level for a cumulative XP total.
// Negative XP clamps to level 1.
func LevelForXP(xp int) int {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if xp >= thresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPFloorForLevel returns the minimum XP required for the given level.
// Levels outside [1, MaxLevel] clamp to the nearest defined level.
func XPFloorForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return thresholds[level-1]
}

// XPCeilingForLevel returns the XP at which the next level begins.
// For MaxLevel there is no next threshold, so the floor is returned.
func XPCeilingForLevel(level int) int {
	if level >= MaxLevel {
		return thresholds[MaxLevel-1]
	}
	return XPFloorForLevel(level + 1)
}

// LevelProgress returns the fraction [0,1] of progress through the
// current level toward the next.
func LevelProgress(xp int) float64 {
	level := LevelForXP(xp)
	floor := XPFloorForLevel(level)
	ceiling := XPCeilingForLevel(level)
	if ceiling <= floor {
		return 1.0
	}
	p := float64(xp-floor) / float64(ceiling-floor)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// TitleForLevel returns the qualitative title band for a level.
func TitleForLevel(level int) string {
	switch {
	case level <= 3:
		return "Novice"
	case level <= 7:
		return "Explorer"
	case level <= 12:
		return "Champion"
	case level <= 16:
		return "Master"
	default:
		return "Legend"
	}
}
