package domain

// Level is a team member's experience tier.
type Level string

const (
	LevelIntern Level = "Intern"
	LevelJunior Level = "Junior"
	LevelMiddle Level = "Middle"
	LevelSenior Level = "Senior"
)

// Levels returns every level from least to most experienced.
func Levels() []Level {
	return []Level{LevelIntern, LevelJunior, LevelMiddle, LevelSenior}
}

// LevelNames returns the levels as plain strings, in order.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, level := range levels {
		names[i] = string(level)
	}
	return names
}

// String returns the level name.
func (l Level) String() string {
	return string(l)
}
