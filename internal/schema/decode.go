package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// refine is used for single-value refinements the ecosystem already solves
// (email, url). Everything else is checked directly.
var refine = validator.New()

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

// object wraps one untyped record during a decode pass. Field accessors
// record violations instead of returning errors so a single pass collects
// every failure. Unknown keys are ignored.
type object struct {
	raw  map[string]any
	path string
	vs   *violations
}

func asObject(v any, path string, vs *violations) (object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		vs.add(path, ruleObject)
		return object{}, false
	}
	return object{raw: m, path: path, vs: vs}, true
}

func (o object) key(name string) string {
	return joinPath(o.path, name)
}

func (o object) get(name string) (any, bool) {
	v, ok := o.raw[name]
	return v, ok
}

// numberOf reports the numeric value of v, if it has one. JSON decoding
// yields float64; int variants cover values built in Go code.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// integerOf reports (value, isNumber, isIntegral). The constraint is on the
// value, not the encoding: float64(3) passes, float64(3.5) does not. There
// is no coercion from text.
func integerOf(v any) (int64, bool, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true, true
	case int32:
		return int64(n), true, true
	case int64:
		return n, true, true
	case float64:
		// Floats beyond int64 range cannot be converted losslessly and
		// are rejected with the non-integral values.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, true, false
		}
		return int64(n), true, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true, true
		}
		if f, err := n.Float64(); err == nil {
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return 0, true, false
			}
			return int64(f), true, true
		}
	}
	return 0, false, false
}

func isCanonicalUUID(s string) bool {
	// uuid.Parse also accepts urn: and braced forms; the canonical
	// hyphenated rendering is exactly 36 characters.
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// --- string fields ---

func (o object) requiredString(name string) (string, bool) {
	raw, ok := o.get(name)
	if !ok {
		o.vs.add(o.key(name), ruleRequired)
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		o.vs.add(o.key(name), ruleString)
		return "", false
	}
	return s, true
}

func (o object) nonEmptyString(name string) string {
	s, ok := o.requiredString(name)
	if ok && s == "" {
		o.vs.add(o.key(name), ruleNonEmpty)
	}
	return s
}

func (o object) optionalString(name string) *string {
	raw, ok := o.get(name)
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		o.vs.add(o.key(name), ruleString)
		return nil
	}
	return &s
}

func (o object) optionalNonEmptyString(name string) *string {
	p := o.optionalString(name)
	if p != nil && *p == "" {
		o.vs.add(o.key(name), ruleNonEmpty)
	}
	return p
}

// exactLengthString counts characters, not bytes.
func (o object) exactLengthString(name string, length int) string {
	s, ok := o.requiredString(name)
	if ok && utf8.RuneCountInString(s) != length {
		o.vs.add(o.key(name), fmt.Sprintf("must be exactly %d characters", length))
	}
	return s
}

func (o object) id(name string) string {
	s, ok := o.requiredString(name)
	if ok && !isCanonicalUUID(s) {
		o.vs.add(o.key(name), ruleUUID)
	}
	return s
}

func (o object) optionalID(name string) *string {
	p := o.optionalString(name)
	if p != nil && !isCanonicalUUID(*p) {
		o.vs.add(o.key(name), ruleUUID)
	}
	return p
}

func (o object) dateTime(name string) string {
	s, ok := o.requiredString(name)
	if ok {
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			o.vs.add(o.key(name), ruleDateTime)
		}
	}
	return s
}

func (o object) email(name string) string {
	s, ok := o.requiredString(name)
	if ok && refine.Var(s, "email") != nil {
		o.vs.add(o.key(name), ruleEmail)
	}
	return s
}

func (o object) optionalURL(name string) *string {
	p := o.optionalString(name)
	if p != nil && refine.Var(*p, "url") != nil {
		o.vs.add(o.key(name), ruleURL)
	}
	return p
}

func (o object) currency(name string) string {
	s, ok := o.requiredString(name)
	if ok && !isCurrencyCode(s) {
		o.vs.add(o.key(name), ruleCurrency)
	}
	return s
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (o object) enum(name string, allowed []string) string {
	s, ok := o.requiredString(name)
	if ok && !isEnumMember(s, allowed) {
		o.vs.add(o.key(name), enumRule(allowed))
	}
	return s
}

// Enum membership is exact: no case folding, no synonyms.
func isEnumMember(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func enumRule(allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return "must be one of " + strings.Join(quoted, ", ")
}

// --- numeric fields ---

func (o object) integer(name string) (int64, bool) {
	raw, ok := o.get(name)
	if !ok {
		o.vs.add(o.key(name), ruleRequired)
		return 0, false
	}
	return o.checkInteger(raw, o.key(name))
}

func (o object) checkInteger(raw any, path string) (int64, bool) {
	n, isNum, isInt := integerOf(raw)
	if !isNum {
		o.vs.add(path, ruleNumber)
		return 0, false
	}
	if !isInt {
		o.vs.add(path, ruleInteger)
		return 0, false
	}
	return n, true
}

func (o object) nonNegativeInt(name string) int64 {
	n, ok := o.integer(name)
	if ok && n < 0 {
		o.vs.add(o.key(name), ruleNonNegative)
	}
	return n
}

func (o object) positiveInt(name string) int {
	n, ok := o.integer(name)
	if ok && n <= 0 {
		o.vs.add(o.key(name), rulePositive)
	}
	return int(n)
}

func (o object) optionalInt(name string) *int {
	raw, ok := o.get(name)
	if !ok {
		return nil
	}
	n, ok := o.checkInteger(raw, o.key(name))
	if !ok {
		return nil
	}
	v := int(n)
	return &v
}

func (o object) optionalPositiveInt(name string) *int {
	raw, ok := o.get(name)
	if !ok {
		return nil
	}
	n, ok := o.checkInteger(raw, o.key(name))
	if !ok {
		return nil
	}
	if n <= 0 {
		o.vs.add(o.key(name), rulePositive)
		return nil
	}
	v := int(n)
	return &v
}

// nullableNonNegativeInt is for fields where the key is required but JSON
// null is a legal value (null means "no limit").
func (o object) nullableNonNegativeInt(name string) *int {
	raw, ok := o.get(name)
	if !ok {
		o.vs.add(o.key(name), ruleRequired)
		return nil
	}
	if raw == nil {
		return nil
	}
	n, ok := o.checkInteger(raw, o.key(name))
	if !ok {
		return nil
	}
	if n < 0 {
		o.vs.add(o.key(name), ruleNonNegative)
		return nil
	}
	v := int(n)
	return &v
}

func (o object) nonNegativeNumber(name string) float64 {
	raw, ok := o.get(name)
	if !ok {
		o.vs.add(o.key(name), ruleRequired)
		return 0
	}
	f, ok := numberOf(raw)
	if !ok {
		o.vs.add(o.key(name), ruleNumber)
		return 0
	}
	if f < 0 {
		o.vs.add(o.key(name), ruleNonNegative)
	}
	return f
}

func (o object) optionalNonNegativeNumber(name string) *float64 {
	raw, ok := o.get(name)
	if !ok {
		return nil
	}
	f, ok := numberOf(raw)
	if !ok {
		o.vs.add(o.key(name), ruleNumber)
		return nil
	}
	if f < 0 {
		o.vs.add(o.key(name), ruleNonNegative)
		return nil
	}
	return &f
}

// --- booleans and arrays ---

// boolDefault materializes a missing flag to false before any checks run.
func (o object) boolDefault(name string) bool {
	raw, ok := o.get(name)
	if !ok {
		return false
	}
	b, ok := raw.(bool)
	if !ok {
		o.vs.add(o.key(name), ruleBoolean)
		return false
	}
	return b
}

// elements returns the raw elements of an array field that defaults to
// empty when absent.
func (o object) elementsDefault(name string) []any {
	raw, ok := o.get(name)
	if !ok {
		return []any{}
	}
	arr, ok := raw.([]any)
	if !ok {
		o.vs.add(o.key(name), ruleArray)
		return []any{}
	}
	return arr
}

func (o object) stringArrayDefault(name string) []string {
	out := []string{}
	for i, el := range o.elementsDefault(name) {
		s, ok := el.(string)
		if !ok {
			o.vs.add(indexPath(o.key(name), i), ruleString)
			continue
		}
		if s == "" {
			o.vs.add(indexPath(o.key(name), i), ruleNonEmpty)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (o object) idArrayDefault(name string) []string {
	out := []string{}
	for i, el := range o.elementsDefault(name) {
		s, ok := el.(string)
		if !ok {
			o.vs.add(indexPath(o.key(name), i), ruleString)
			continue
		}
		if !isCanonicalUUID(s) {
			o.vs.add(indexPath(o.key(name), i), ruleUUID)
			continue
		}
		out = append(out, s)
	}
	return out
}
