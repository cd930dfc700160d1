package models

import "fmt"

// ValidationError reports a payload that violates a schema constraint:
// an enumerated field outside its closed set, a ranged numeric outside its
// inclusive bound, or a missing required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{Field: field, Reason: fmt.Sprintf("must be one of %v", allowed)}
}

func intInRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

func floatInRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be between %g and %g", min, max)}
	}
	return nil
}
