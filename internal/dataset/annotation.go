package dataset

import "encoding/json"

// Annotation holds the QA document for a sample: the decoded JSON tree
// (object, array, or scalar), or a placeholder mapping when the companion
// file is missing or unparsable.
type Annotation struct {
	Value any
}

// InfoAnnotation returns a placeholder mapping carrying an informational
// message, used when a sample has no JSON companion.
func InfoAnnotation(msg string) Annotation {
	return Annotation{Value: map[string]any{"Info": msg}}
}

// ErrorAnnotation returns a placeholder mapping carrying a parse failure
// message.
func ErrorAnnotation(msg string) Annotation {
	return Annotation{Value: map[string]any{"Error": msg}}
}

// EmptyAnnotation returns the degenerate annotation used when no sample is
// selected.
func EmptyAnnotation() Annotation {
	return Annotation{Value: map[string]any{}}
}

// ParseAnnotation decodes a JSON document.
func ParseAnnotation(data []byte) (Annotation, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Annotation{}, err
	}
	return Annotation{Value: v}, nil
}
