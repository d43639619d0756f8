package policy

import "testing"

func TestLevelFor_Clamps(t *testing.T) {
	if got := LevelFor(0); got.Name != "Foundation" {
		t.Errorf("LevelFor(0).Name = %s, want Foundation", got.Name)
	}
	if got := LevelFor(9); got.Name != "Mastery" {
		t.Errorf("LevelFor(9).Name = %s, want Mastery", got.Name)
	}
	if got := LevelFor(3); got.HintAllowance != 1 || got.TimePressure != 1.0 {
		t.Errorf("LevelFor(3) = %+v, want Application with 1 hint at 1.0x time", got)
	}
}

func TestAllowedQuestionTypes_NarrowWithLevel(t *testing.T) {
	foundation := AllowedQuestionTypes(1)
	if len(foundation) != 3 || foundation[0] != "definition" {
		t.Errorf("level 1 types = %v, want definition first", foundation)
	}
	if LevelFor(6).HintAllowance != 0 {
		t.Error("mastery level should allow no hints")
	}
}

func TestDetectStruggleArea(t *testing.T) {
	cases := []struct {
		name   string
		missed []string
		want   StruggleArea
	}{
		{"empty history", nil, StruggleDefinition},
		{"dominant process", []string{"problem_solving", "breakdown", "comparison"}, StruggleProcess},
		{"dominant application", []string{"scenario", "case_study", "design", "true_false"}, StruggleApplication},
		{"unknown types count as definition", []string{"riddle", "riddle"}, StruggleDefinition},
		{"tie resolves to definition", []string{"definition", "breakdown"}, StruggleDefinition},
		{"tie without definition resolves foundational", []string{"breakdown", "comparison"}, StruggleProcess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectStruggleArea(tc.missed); got != tc.want {
				t.Errorf("DetectStruggleArea(%v) = %s, want %s", tc.missed, got, tc.want)
			}
		})
	}
}

func TestScaffoldingFor_FallsBackToDefinition(t *testing.T) {
	got := ScaffoldingFor(StruggleArea("unknown"))
	if got.Area != StruggleDefinition {
		t.Errorf("Area = %s, want definition fallback", got.Area)
	}
	if len(got.HintTemplates) == 0 || len(got.Strategies) == 0 {
		t.Error("scaffolding bundle missing hints or strategies")
	}
	process := ScaffoldingFor(StruggleProcess)
	if process.Simplification != "Ask about individual steps" {
		t.Errorf("process simplification = %q", process.Simplification)
	}
}
