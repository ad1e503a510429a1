package logging

// Severity represents the importance of a log record.
type Severity int8

const (
	// SeverityFinest is for the most detailed tracing.
	SeverityFinest Severity = iota
	// SeverityFiner is for detailed tracing.
	SeverityFiner
	// SeverityFine is for important tracing.
	SeverityFine
	// SeverityInfo is for normal operational events.
	SeverityInfo
	// SeverityWarning is for problems the caller recovers from.
	SeverityWarning
	// SeveritySevere is for failures.
	SeveritySevere

	severityUnknown Severity = -1
)

// Tag strings are fixed width so that message bodies line up.
const (
	tagFinest  = "[   ] "
	tagFiner   = "[ - ] "
	tagFine    = "[ # ] "
	tagInfo    = "[ i ] "
	tagWarning = "[!W!] "
	tagSevere  = "[!E!] "
	tagUnknown = "[ ? ]"
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityFinest:
		return "finest"
	case SeverityFiner:
		return "finer"
	case SeverityFine:
		return "fine"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// Tag returns the bracketed prefix written in front of every line.
func (s Severity) Tag() string {
	switch s {
	case SeverityFinest:
		return tagFinest
	case SeverityFiner:
		return tagFiner
	case SeverityFine:
		return tagFine
	case SeverityInfo:
		return tagInfo
	case SeverityWarning:
		return tagWarning
	case SeveritySevere:
		return tagSevere
	default:
		return tagUnknown
	}
}

// ParseSeverity parses a severity name as produced by String.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "finest":
		return SeverityFinest, true
	case "finer":
		return SeverityFiner, true
	case "fine":
		return SeverityFine, true
	case "info":
		return SeverityInfo, true
	case "warning":
		return SeverityWarning, true
	case "severe":
		return SeveritySevere, true
	default:
		return severityUnknown, false
	}
}

// toStdout reports whether mirrored output of this severity goes to stdout.
func (s Severity) toStdout() bool {
	return s >= SeverityFinest && s <= SeverityInfo
}

// toStderr reports whether mirrored output of this severity goes to stderr.
func (s Severity) toStderr() bool {
	return s == SeverityWarning || s == SeveritySevere
}
