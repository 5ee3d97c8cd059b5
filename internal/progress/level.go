// Package progress computes the gamified progression of a child:
// experience points, levels, titles and daily streaks.
package progress

// XPForLevel returns the cumulative XP needed to reach level.
// Level n requires 100*n*(n-1), so each level costs 200 more than the last.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 100 * level * (level - 1)
}

// LevelFor returns the level reached with xp total experience.
func LevelFor(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// XPIntoLevel returns how much of the current level has been earned.
func XPIntoLevel(xp int) int {
	return xp - XPForLevel(LevelFor(xp))
}

// XPForNextLevel returns the size of level's XP band.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 200 * level
}

var titles = []string{
	"萌芽新星",
	"探索小队员",
	"思考小达人",
	"创意小能手",
	"成长小冠军",
}

// TitleFor returns the display title for a level. Titles change every two
// levels and stop at the last one.
func TitleFor(level int) string {
	i := (level - 1) / 2
	if i < 0 {
		i = 0
	}
	if i >= len(titles) {
		i = len(titles) - 1
	}
	return titles[i]
}

// Snapshot is the presentation view of a child's progression.
type Snapshot struct {
	Level          int    `json:"level"`
	XP             int    `json:"xp"`
	XPIntoLevel    int    `json:"xpIntoLevel"`
	XPForNextLevel int    `json:"xpForNextLevel"`
	Title          string `json:"title"`
}

// SnapshotFor builds the progression view for xp total experience.
func SnapshotFor(xp int) Snapshot {
	level := LevelFor(xp)
	return Snapshot{
		Level:          level,
		XP:             xp,
		XPIntoLevel:    XPIntoLevel(xp),
		XPForNextLevel: XPForNextLevel(level),
		Title:          TitleFor(level),
	}
}
