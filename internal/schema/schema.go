// Package schema holds the per-entity form types and their validation.
// Validation is data, not control flow: a form either normalizes into
// an entity or yields a map of field name to the first human-readable
// message for that field.
package schema

import "time"

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// setFieldError records a message for a field, keeping only the first
// violation per field.
func setFieldError(errs map[string]string, field, message string) map[string]string {
	if errs == nil {
		errs = make(map[string]string)
	}
	if _, seen := errs[field]; !seen {
		errs[field] = message
	}
	return errs
}
