package schema

import "strings"

// Violation identifies a single failed constraint by field path.
type Violation struct {
	Path string `json:"path"`
	Rule string `json:"rule"`
}

// Error is the validation failure for a whole record. It carries every
// violated constraint in field order, not just the first one.
type Error struct {
	Violations []Violation `json:"violations"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Path == "" {
			parts = append(parts, v.Rule)
		} else {
			parts = append(parts, v.Path+": "+v.Rule)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// violations accumulates failures during a decode pass.
type violations struct {
	list []Violation
}

func (vs *violations) add(path, rule string) {
	vs.list = append(vs.list, Violation{Path: path, Rule: rule})
}

// asError returns nil when no constraint was violated.
func (vs *violations) asError() error {
	if len(vs.list) == 0 {
		return nil
	}
	return &Error{Violations: vs.list}
}

// Rule descriptions shared across fields.
const (
	ruleRequired    = "required field missing"
	ruleString      = "must be a string"
	ruleNonEmpty    = "must not be empty"
	ruleNumber      = "must be a number"
	ruleInteger     = "must be an integer"
	ruleNonNegative = "must not be negative"
	rulePositive    = "must be greater than zero"
	ruleBoolean     = "must be a boolean"
	ruleObject      = "must be an object"
	ruleArray       = "must be an array"
	ruleUUID        = "must be a canonical UUID"
	ruleDateTime    = "must be an ISO 8601 date-time"
	ruleCurrency    = "must be a 3-letter uppercase currency code"
	ruleEmail       = "must be a valid email address"
	ruleURL         = "must be a valid URL"
)
