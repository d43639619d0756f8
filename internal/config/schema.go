package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema is the JSON Schema every config file must satisfy
// before merging. Bounds here mirror the model parameter bounds so a
// bad file fails at load, not mid-session.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "domain_thresholds": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "mastery_threshold": {"type": "number", "minimum": 0, "maximum": 1},
          "consistency_count": {"type": "integer", "minimum": 0}
        },
        "required": ["mastery_threshold", "consistency_count"]
      }
    },
    "bkt_priors": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "p_l0": {"type": "number", "minimum": 0, "maximum": 1},
          "p_t": {"type": "number", "minimum": 0, "maximum": 1},
          "p_g": {"type": "number", "minimum": 0, "exclusiveMaximum": 0.5},
          "p_s": {"type": "number", "minimum": 0, "exclusiveMaximum": 0.3}
        },
        "required": ["p_l0", "p_t", "p_g", "p_s"]
      }
    },
    "cold_start": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "discrimination_a": {"type": "number", "minimum": 0.5, "maximum": 2.5},
          "difficulty_b": {"type": "number", "minimum": -3, "maximum": 3},
          "guessing_c": {"type": "number", "minimum": 0, "maximum": 0.35}
        },
        "required": ["discrimination_a", "difficulty_b", "guessing_c"]
      }
    },
    "window": {"type": "integer", "minimum": 1},
    "base_expected_time_ms": {"type": "integer", "minimum": 1}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateSchema checks raw config JSON against the embedded schema.
func validateSchema(raw []byte) error {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(configSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://config.json", def); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://config.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("config is not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("config schema validation failed: %w", err)
	}
	return nil
}
