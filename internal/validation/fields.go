package validation

import (
	"strings"
)

// Record is a raw request body: field names mapped to values of unknown shape.
type Record map[string]any

// Normalizer rewrites a single field value.
type Normalizer func(string) string

// normalizers holds the per-field rules. Fields without an entry pass
// through unchanged.
var normalizers = map[string]Normalizer{
	"name":    strings.TrimSpace,
	"message": strings.TrimSpace,
	"email":   NormalizeEmail,
}

// NormalizeEmail trims and lowercases an e-mail address. It does not
// validate the format.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup returns the string value of name, or nil when the field is
// missing or holds anything other than a string.
func (r Record) Lookup(name string) *string {
	v, ok := r[name]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// IsBlank reports whether an optional string is missing, empty or
// whitespace only.
func IsBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}

// NormalizeField applies the rule registered for name to value.
func NormalizeField(name, value string) string {
	if normalize, ok := normalizers[name]; ok {
		return normalize(value)
	}
	return value
}

// NormalizeFields applies NormalizeField to every entry. The input is
// not modified.
func NormalizeFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, value := range fields {
		out[name] = NormalizeField(name, value)
	}
	return out
}

// Normalize keeps the string-valued fields of r and normalizes them.
// Non-string values are dropped.
func (r Record) Normalize() map[string]string {
	fields := make(map[string]string, len(r))
	for name := range r {
		if v := r.Lookup(name); v != nil {
			fields[name] = *v
		}
	}
	return NormalizeFields(fields)
}

// Result is the outcome of Validate.
//
// When Valid is true, Fields holds the normalized string fields of the
// record. Otherwise Missing lists the required fields that were blank,
// in the order they were declared.
type Result struct {
	Valid   bool
	Fields  map[string]string
	Missing []string
}

// Validate checks that every required field of record is present and
// not blank. It never fails: malformed values count as blank.
//
// Validate is pure and holds no state, so it can be called from any
// number of goroutines.
func Validate(record Record, required []string) Result {
	var missing []string
	for _, name := range required {
		if IsBlank(record.Lookup(name)) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return Result{Valid: false, Missing: missing}
	}

	return Result{Valid: true, Fields: record.Normalize()}
}
