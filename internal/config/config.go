// Package config loads the static engine configuration: domain mastery
// thresholds, per-concept BKT priors, and per-question-type IRT
// cold-start parameters. Loaded once at startup; never mutated after.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rsinha/adaptiq/internal/bkt"
	"github.com/rsinha/adaptiq/internal/irt"
	"github.com/rsinha/adaptiq/internal/policy"
)

// ColdStart holds the 3PL defaults applied to a new item of a given
// question category before any attempts accumulate.
type ColdStart struct {
	Discrimination float64 `json:"discrimination_a"`
	Difficulty     float64 `json:"difficulty_b"`
	Guessing       float64 `json:"guessing_c"`
}

// Config is the full static configuration surface.
type Config struct {
	// Thresholds maps domain name to its mastery declaration rule.
	Thresholds map[string]policy.DomainThreshold `json:"domain_thresholds"`

	// BKTPriors overrides the default BKT parameters per concept id.
	BKTPriors map[string]bkt.Params `json:"bkt_priors"`

	// ColdStart maps question category to initial item parameters.
	ColdStart map[string]ColdStart `json:"cold_start"`

	// Window is the trailing answer count for zone evaluation.
	Window int `json:"window"`

	// BaseExpectedTimeMs is the expected answer time at 1.0x time
	// pressure; per-level pressure multiplies it.
	BaseExpectedTimeMs int `json:"base_expected_time_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Thresholds: policy.DefaultDomainThresholds(),
		BKTPriors:  map[string]bkt.Params{},
		ColdStart: map[string]ColdStart{
			"multiple_choice": {Discrimination: 1.0, Difficulty: 0.0, Guessing: 0.25},
			"true_false":      {Discrimination: 0.8, Difficulty: -0.5, Guessing: 0.35},
			"free_response":   {Discrimination: 1.2, Difficulty: 0.5, Guessing: 0.0},
		},
		Window:             5,
		BaseExpectedTimeMs: 30000,
	}
}

// Load reads a JSON config file, validates it against the embedded
// schema, and merges it over the defaults: maps are merged per key,
// scalars replaced when set.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return Config{}, err
	}

	var file Config
	if err := json.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	for k, v := range file.Thresholds {
		cfg.Thresholds[k] = v
	}
	for k, v := range file.BKTPriors {
		cfg.BKTPriors[k] = v
	}
	for k, v := range file.ColdStart {
		cfg.ColdStart[k] = v
	}
	if file.Window > 0 {
		cfg.Window = file.Window
	}
	if file.BaseExpectedTimeMs > 0 {
		cfg.BaseExpectedTimeMs = file.BaseExpectedTimeMs
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the environment, falling back to
// defaults: ADAPTIQ_CONFIG points at a JSON file, ADAPTIQ_WINDOW and
// ADAPTIQ_BASE_EXPECTED_TIME_MS override the scalars.
func FromEnv() (Config, error) {
	cfg := Default()
	if path := os.Getenv("ADAPTIQ_CONFIG"); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if w := os.Getenv("ADAPTIQ_WINDOW"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("ADAPTIQ_WINDOW must be a positive integer, got %q", w)
		}
		cfg.Window = n
	}
	if ms := os.Getenv("ADAPTIQ_BASE_EXPECTED_TIME_MS"); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("ADAPTIQ_BASE_EXPECTED_TIME_MS must be a positive integer, got %q", ms)
		}
		cfg.BaseExpectedTimeMs = n
	}
	return cfg, nil
}

// Validate checks every entry against the model parameter bounds.
func (c Config) Validate() error {
	for domain, th := range c.Thresholds {
		if th.MasteryThreshold < 0 || th.MasteryThreshold > 1 {
			return fmt.Errorf("domain %q: mastery_threshold %v outside [0,1]", domain, th.MasteryThreshold)
		}
		if th.ConsistencyCount < 0 {
			return fmt.Errorf("domain %q: consistency_count %d negative", domain, th.ConsistencyCount)
		}
	}
	for concept, p := range c.BKTPriors {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("bkt prior for concept %q: %w", concept, err)
		}
	}
	for category, cs := range c.ColdStart {
		params := irt.ItemParams{
			Discrimination: cs.Discrimination,
			Difficulty:     cs.Difficulty,
			Guessing:       cs.Guessing,
		}
		if err := params.Validate(); err != nil {
			return fmt.Errorf("cold start for category %q: %w", category, err)
		}
	}
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %d", c.Window)
	}
	if c.BaseExpectedTimeMs <= 0 {
		return fmt.Errorf("base_expected_time_ms must be positive, got %d", c.BaseExpectedTimeMs)
	}
	return nil
}

// ColdStartFor returns the 3PL defaults for a question category,
// falling back to multiple_choice for unknown categories.
func (c Config) ColdStartFor(category string) ColdStart {
	if cs, ok := c.ColdStart[category]; ok {
		return cs
	}
	return c.ColdStart["multiple_choice"]
}

// PriorFor returns the BKT prior for a concept, falling back to the
// package defaults.
func (c Config) PriorFor(conceptID string) bkt.Params {
	if p, ok := c.BKTPriors[conceptID]; ok {
		return p
	}
	return bkt.DefaultParams()
}

// ThresholdFor returns the mastery rule for a domain, falling back to
// the general domain.
func (c Config) ThresholdFor(domain string) policy.DomainThreshold {
	if th, ok := c.Thresholds[domain]; ok {
		return th
	}
	return c.Thresholds["general"]
}
