// Package policy reconciles mastery, zone, and behavioral signals into
// a single difficulty decision per answer. It is pure: no I/O, no
// stored state, every output a function of the inputs.
package policy

// Level describes one rung of the 1-6 difficulty ladder.
type Level struct {
	Level         int
	Name          string
	QuestionTypes []string
	HintAllowance int
	TimePressure  float64
	Description   string
}

var levels = [...]Level{
	{
		Level:         1,
		Name:          "Foundation",
		QuestionTypes: []string{"definition", "recognition", "true_false"},
		HintAllowance: 3,
		TimePressure:  1.5,
		Description:   "Basic recall and recognition",
	},
	{
		Level:         2,
		Name:          "Understanding",
		QuestionTypes: []string{"explanation", "comparison", "cause_effect"},
		HintAllowance: 2,
		TimePressure:  1.3,
		Description:   "Comprehension and interpretation",
	},
	{
		Level:         3,
		Name:          "Application",
		QuestionTypes: []string{"scenario", "case_study", "problem_solving"},
		HintAllowance: 1,
		TimePressure:  1.0,
		Description:   "Apply knowledge to new situations",
	},
	{
		Level:         4,
		Name:          "Analysis",
		QuestionTypes: []string{"breakdown", "pattern_recognition", "critique"},
		HintAllowance: 0,
		TimePressure:  0.9,
		Description:   "Break down and analyze components",
	},
	{
		Level:         5,
		Name:          "Synthesis",
		QuestionTypes: []string{"design", "integration", "hypothesis"},
		HintAllowance: 0,
		TimePressure:  0.8,
		Description:   "Combine elements into new patterns",
	},
	{
		Level:         6,
		Name:          "Mastery",
		QuestionTypes: []string{"teach_back", "edge_case", "meta_cognition"},
		HintAllowance: 0,
		TimePressure:  0.7,
		Description:   "Expert-level teaching and edge cases",
	},
}

// LevelFor returns the ladder entry for a level, clamping out-of-range
// input to the nearest rung.
func LevelFor(level int) Level {
	if level < 1 {
		level = 1
	}
	if level > len(levels) {
		level = len(levels)
	}
	return levels[level-1]
}

// AllowedQuestionTypes returns the question types permitted at a level.
func AllowedQuestionTypes(level int) []string {
	return LevelFor(level).QuestionTypes
}
