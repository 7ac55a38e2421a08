package generation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const questionsSchemaJSON = `{
  "type": "array",
  "minItems": 1,
  "items": {"type": "string", "minLength": 1}
}`

const stringArray = `{"type": "array", "items": {"type": "string"}}`

var feedbackSchemaJSON = `{
  "type": "object",
  "required": ["overall_score", "summary_strengths", "development_areas", "detailed_feedback", "recommendation_summary"],
  "properties": {
    "overall_score": {"type": "number"},
    "summary_strengths": ` + stringArray + `,
    "development_areas": ` + stringArray + `,
    "detailed_feedback": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "question_asked": {"type": "string"},
          "candidate_response": {"type": "string"},
          "rating": {"type": "number"},
          "strengths": ` + stringArray + `,
          "improvements": ` + stringArray + `,
          "alignment_to_role": {"type": "string"},
          "follow_up_suggestions": ` + stringArray + `
        }
      }
    },
    "recommendation_summary": {"type": "string"},
    "next_steps": {"type": "string"}
  }
}`

var (
	questionsSchema = mustSchema(questionsSchemaJSON)
	feedbackSchema  = mustSchema(feedbackSchemaJSON)
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid schema: %v", err))
	}
	return s
}

// SchemaError lists every violation found in a model response.
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return "response does not match schema: " + strings.Join(e.Errors, "; ")
}

// validate checks raw JSON against schema. Malformed JSON is reported as an
// error from the loader.
func validate(schema *gojsonschema.Schema, raw string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			msgs = append(msgs, re.String())
		}
		return &SchemaError{Errors: msgs}
	}
	return nil
}
