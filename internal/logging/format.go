package logging

import "strings"

const lineSeparator = "\n"

// Record is a single log entry after it has left the zerolog pipeline.
type Record struct {
	Severity Severity
	Message  string
	// Source is the function that attached an error, as "pkg.Func".
	Source string
	// Trace is the rendered error. Empty means no error is attached.
	Trace string
}

// Format renders a record as one or more tagged lines.
func Format(r Record) string {
	if r.Message == lineSeparator {
		return lineSeparator
	}

	var b strings.Builder
	b.Grow(180)

	msg := r.Message
	if strings.HasPrefix(msg, lineSeparator) {
		b.WriteString(lineSeparator)
		msg = msg[len(lineSeparator):]
	}

	tag := r.Severity.Tag()
	b.WriteString(tag)
	b.WriteString(strings.ReplaceAll(msg, lineSeparator, lineSeparator+tag))
	b.WriteString(lineSeparator)

	if r.Trace != "" {
		b.WriteString("at ")
		b.WriteString(r.Source)
		b.WriteString(lineSeparator)
		b.WriteString(r.Trace)
		if !strings.HasSuffix(r.Trace, lineSeparator) {
			b.WriteString(lineSeparator)
		}
		b.WriteString(lineSeparator)
	}

	return b.String()
}
