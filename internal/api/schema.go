package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchemaJSON is the shape the quiz flow depends on: a non-empty
// question list where every question has text and at least two options.
const quizSchemaJSON = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["question_text", "options"],
				"properties": {
					"question_text": {"type": "string", "minLength": 1},
					"explanation": {"type": "string"},
					"options": {
						"type": "array",
						"minItems": 2,
						"items": {
							"type": "object",
							"required": ["text", "is_correct"],
							"properties": {
								"text": {"type": "string"},
								"is_correct": {"type": "boolean"}
							}
						}
					}
				}
			}
		},
		"session_id": {"type": "string"}
	}
}`

var (
	quizSchemaOnce sync.Once
	quizSchema     *jsonschema.Schema
	quizSchemaErr  error
)

// validateQuizPayload checks a raw generation response against the
// quiz schema. Returns *InvalidResponseError on any mismatch.
func validateQuizPayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidResponseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledQuizSchema()
	if err != nil {
		return &InvalidResponseError{Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidResponseError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledQuizSchema compiles the quiz schema once and caches it.
func compiledQuizSchema() (*jsonschema.Schema, error) {
	quizSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(quizSchemaJSON), &def); err != nil {
			quizSchemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://quiz-generate.json"
		if err := c.AddResource(url, def); err != nil {
			quizSchemaErr = err
			return
		}
		quizSchema, quizSchemaErr = c.Compile(url)
	})
	return quizSchema, quizSchemaErr
}
