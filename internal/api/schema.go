package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionsSchema is the expected shape of the questions/{skill} payload.
// Every question must offer at least two options, and the answer key must
// be present; a malformed question would otherwise surface as an
// unanswerable position mid-session.
var questionsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"question", "options", "correct_answer"},
		"properties": map[string]any{
			"type":     map[string]any{"type": "string"},
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    map[string]any{"type": "string"},
			},
			"correct_answer": map[string]any{"type": "string"},
			"skill":          map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce        sync.Once
	compiledSchema     *jsonschema.Schema
	compileErr         error
	questionsSchemaURL = "schema://questions.json"
)

func compiledQuestionsSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(questionsSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionsSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(questionsSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateQuestions validates a raw questions payload against the schema.
// Returns *ErrInvalidPayload on failure.
func validateQuestions(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{Op: "questions", Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledQuestionsSchema()
	if err != nil {
		return &ErrInvalidPayload{Op: "questions", Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Op: "questions", Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	return nil
}
