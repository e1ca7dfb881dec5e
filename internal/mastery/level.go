package mastery

// Level represents a learner's position in the per-topic mastery ladder.
type Level string

const (
	LevelNovice     Level = "novice"
	LevelCompetent  Level = "competent"
	LevelProficient Level = "proficient"
	LevelExpert     Level = "expert"
	LevelMaster     Level = "master"
)

// ladder holds the levels in advancement order. Master is terminal.
var ladder = []Level{LevelNovice, LevelCompetent, LevelProficient, LevelExpert, LevelMaster}

// AllLevels returns the mastery levels in advancement order.
func AllLevels() []Level {
	return append([]Level(nil), ladder...)
}

// Next returns the level one step above l, or l itself when l is
// terminal or unknown.
func Next(l Level) Level {
	for i, cur := range ladder {
		if cur == l && i+1 < len(ladder) {
			return ladder[i+1]
		}
	}
	return l
}

// Rank returns the ordinal position of a level, novice = 0. Unknown
// levels rank below novice.
func Rank(l Level) int {
	for i, cur := range ladder {
		if cur == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is a known mastery level.
func Valid(l Level) bool {
	return Rank(l) >= 0
}

// Transition records a mastery level change for event logging and display.
type Transition struct {
	UserID   string
	TopicID  string
	From     Level
	To       Level
	Accuracy float64
}
