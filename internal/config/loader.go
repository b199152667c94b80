package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// suiteSchema is the structural contract for suite files. Semantic
// rules (positive counts, parseable durations, known units) live in
// Validate; the schema catches shape errors with better messages than
// a decode failure would give.
const suiteSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["benchmarks"],
	"properties": {
		"name": {"type": "string"},
		"benchmarks": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["workload"],
				"properties": {
					"label": {"type": "string"},
					"workload": {"type": "string"},
					"warmup": {"type": "integer"},
					"iterations": {"type": "integer"},
					"targetDuration": {"type": "string"},
					"unit": {"type": "string"}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

func schema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("suite.json", strings.NewReader(suiteSchema)); err != nil {
			compileSchemaError = err
			return
		}
		compiledSchema, compileSchemaError = compiler.Compile("suite.json")
	})
	return compiledSchema, compileSchemaError
}

// LoadSuite reads, schema-validates, decodes and semantically
// validates a suite file, applying defaults to unset fields.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite parses raw YAML suite content.
func ParseSuite(data []byte) (*Suite, error) {
	// Structural pass against the schema. yaml.v3 decodes mappings to
	// map[string]interface{}, which is what the validator expects.
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("invalid suite schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("suite file does not match schema: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to decode suite: %w", err)
	}

	ApplyDefaults(&suite)

	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}
