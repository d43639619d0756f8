package policy

// StruggleArea categorizes what kind of support a struggling learner
// needs, inferred from the question types they miss.
type StruggleArea string

const (
	StruggleDefinition   StruggleArea = "definition"
	StruggleProcess      StruggleArea = "process"
	StruggleRelationship StruggleArea = "relationship"
	StruggleApplication  StruggleArea = "application"
)

// struggleAreas orders the areas from most to least foundational; ties
// in DetectStruggleArea resolve to the earliest entry, so ambiguous
// error patterns get definition-level support.
var struggleAreas = []StruggleArea{
	StruggleDefinition,
	StruggleProcess,
	StruggleRelationship,
	StruggleApplication,
}

var questionTypeAreas = map[string]StruggleArea{
	"definition":  StruggleDefinition,
	"recognition": StruggleDefinition,
	"true_false":  StruggleDefinition,

	"problem_solving": StruggleProcess,
	"breakdown":       StruggleProcess,

	"comparison":          StruggleRelationship,
	"cause_effect":        StruggleRelationship,
	"pattern_recognition": StruggleRelationship,

	"scenario":    StruggleApplication,
	"case_study":  StruggleApplication,
	"design":      StruggleApplication,
	"integration": StruggleApplication,
}

// DetectStruggleArea infers the dominant struggle area from the
// question types of recently missed questions. Unknown types count
// toward definition; an empty history defaults to definition so the
// learner gets foundational support.
func DetectStruggleArea(missedQuestionTypes []string) StruggleArea {
	if len(missedQuestionTypes) == 0 {
		return StruggleDefinition
	}

	counts := map[StruggleArea]int{}
	for _, qt := range missedQuestionTypes {
		area, ok := questionTypeAreas[qt]
		if !ok {
			area = StruggleDefinition
		}
		counts[area]++
	}

	best := StruggleDefinition
	bestCount := 0
	for _, area := range struggleAreas {
		if counts[area] > bestCount {
			best = area
			bestCount = counts[area]
		}
	}
	return best
}

// Scaffolding bundles the support content for one struggle area.
type Scaffolding struct {
	Area           StruggleArea
	HintTemplates  []string
	Strategies     []string
	Simplification string
	ExamplePrompts []string
}

var scaffoldingByArea = map[StruggleArea]Scaffolding{
	StruggleDefinition: {
		Area: StruggleDefinition,
		HintTemplates: []string{
			"Let's start with the basic definition of {concept}.",
			"The key word here is {keyword}.",
			"Think about what {concept} means in simple terms.",
		},
		Strategies: []string{
			"Focus on the core meaning first",
			"Look for keywords that define the concept",
			"Connect to something you already know",
		},
		Simplification: "Ask for recognition instead of recall",
		ExamplePrompts: []string{
			"Which of these best describes {concept}?",
			"True or false: {simple_statement}",
		},
	},
	StruggleProcess: {
		Area: StruggleProcess,
		HintTemplates: []string{
			"Let's break this down step by step.",
			"The first step is to {step1}.",
			"What needs to happen before {step}?",
		},
		Strategies: []string{
			"Identify the sequence of steps",
			"Focus on one step at a time",
			"Think about the order things happen",
		},
		Simplification: "Ask about individual steps",
		ExamplePrompts: []string{
			"What is the first step in {process}?",
			"What comes after {step}?",
		},
	},
	StruggleRelationship: {
		Area: StruggleRelationship,
		HintTemplates: []string{
			"Think about how {concept1} and {concept2} are connected.",
			"What do these concepts have in common?",
			"How does {concept1} affect {concept2}?",
		},
		Strategies: []string{
			"Look for cause and effect",
			"Identify similarities and differences",
			"Map out how concepts connect",
		},
		Simplification: "Focus on single relationships",
		ExamplePrompts: []string{
			"How are {concept1} and {concept2} similar?",
			"Does {concept1} depend on {concept2}?",
		},
	},
	StruggleApplication: {
		Area: StruggleApplication,
		HintTemplates: []string{
			"Think about a simpler example first.",
			"What concept from the lesson applies here?",
			"Have you seen a similar situation before?",
		},
		Strategies: []string{
			"Start with a simpler version of the problem",
			"Identify which concept to apply",
			"Think about real-world examples",
		},
		Simplification: "Provide more context",
		ExamplePrompts: []string{
			"In this simple case, what would you do?",
			"Which approach would work for {scenario}?",
		},
	},
}

// ScaffoldingFor returns the support bundle for an area; unrecognized
// areas fall back to definition support.
func ScaffoldingFor(area StruggleArea) Scaffolding {
	if s, ok := scaffoldingByArea[area]; ok {
		return s
	}
	return scaffoldingByArea[StruggleDefinition]
}
