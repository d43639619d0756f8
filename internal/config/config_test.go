package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.80, cfg.Thresholds["general"].MasteryThreshold)
	assert.Equal(t, 5, cfg.Thresholds["safety"].ConsistencyCount)
	assert.Equal(t, 5, cfg.Window)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"domain_thresholds": {
			"aviation": {"mastery_threshold": 0.97, "consistency_count": 6}
		},
		"bkt_priors": {
			"algebra.linear": {"p_l0": 0.2, "p_t": 0.25, "p_g": 0.15, "p_s": 0.08}
		},
		"window": 7
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.97, cfg.Thresholds["aviation"].MasteryThreshold)
	// Built-in domains survive the merge.
	assert.Equal(t, 3, cfg.Thresholds["stem"].ConsistencyCount)
	assert.Equal(t, 0.2, cfg.PriorFor("algebra.linear").PL0)
	assert.Equal(t, 7, cfg.Window)
	assert.Equal(t, 30000, cfg.BaseExpectedTimeMs, "untouched scalars keep their defaults")
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"threshold above one", `{"domain_thresholds": {"x": {"mastery_threshold": 1.5, "consistency_count": 0}}}`},
		{"guessing above bound", `{"cold_start": {"mc": {"discrimination_a": 1.0, "difficulty_b": 0, "guessing_c": 0.5}}}`},
		{"unknown top-level key", `{"difficulty_levels": 6}`},
		{"negative window", `{"window": -1}`},
		{"not json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestValidate_RejectsInvalidBKTPrior(t *testing.T) {
	// The schema caps on p_g and p_s already keep their sum under 1,
	// so exercise the structural Validate bounds directly.
	cfg := Default()
	p := cfg.PriorFor("bad")
	p.PG = 0.45
	p.PS = 0.29
	cfg.BKTPriors["bad"] = p
	require.NoError(t, cfg.Validate(), "0.45 + 0.29 < 1 should validate")

	p.PS = 0.31
	cfg.BKTPriors["bad"] = p
	require.Error(t, cfg.Validate(), "p_s above bound")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADAPTIQ_CONFIG", "")
	t.Setenv("ADAPTIQ_WINDOW", "9")
	t.Setenv("ADAPTIQ_BASE_EXPECTED_TIME_MS", "45000")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Window)
	assert.Equal(t, 45000, cfg.BaseExpectedTimeMs)
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("ADAPTIQ_CONFIG", "")
	t.Setenv("ADAPTIQ_WINDOW", "zero")
	t.Setenv("ADAPTIQ_BASE_EXPECTED_TIME_MS", "")
	_, err := FromEnv()
	require.Error(t, err)
}

func TestColdStartFor_FallsBack(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.ColdStart["multiple_choice"], cfg.ColdStartFor("essay"))
	assert.Equal(t, 0.35, cfg.ColdStartFor("true_false").Guessing)
}

func TestThresholdFor_FallsBackToGeneral(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.Thresholds["general"], cfg.ThresholdFor("law"))
}
