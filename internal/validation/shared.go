package validation

import (
	"sort"
	"strings"
)

// Error collects per-field validation failures so a request reports every
// bad parameter at once.
type Error struct {
	Fields map[string]string
}

// Add records msg for field. A later message for the same field wins.
func (e *Error) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Err returns e when it holds at least one field, nil otherwise.
func (e *Error) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error lists the fields in name order.
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	msgs := make([]string, len(names))
	for i, field := range names {
		msgs[i] = field + ": " + e.Fields[field]
	}
	return strings.Join(msgs, "; ")
}
