package calculator

import "fmt"

// Explanation records the reasoning behind a versioning run. All methods are
// nil-safe so callers can skip the bookkeeping when explain mode is off.
type Explanation struct {
	Steps []string
}

// Add appends a reasoning step. Nil-safe.
func (e *Explanation) Add(step string) {
	if e != nil {
		e.Steps = append(e.Steps, step)
	}
}

// Addf appends a formatted reasoning step. Nil-safe.
func (e *Explanation) Addf(format string, args ...any) {
	if e != nil {
		e.Steps = append(e.Steps, fmt.Sprintf(format, args...))
	}
}
