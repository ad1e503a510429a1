package logging

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Extra event fields set by the facility next to zerolog's level and message.
const (
	fieldSource = "at"
	fieldTrace  = "trace"
)

// event is the subset of a zerolog JSON event the formatter needs.
type event struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Source  string `json:"at"`
	Trace   string `json:"trace"`
}

// recordWriter receives encoded zerolog events, formats them and hands the
// text to the facility's sinks.
type recordWriter struct {
	f *Facility
}

var _ zerolog.LevelWriter = recordWriter{}

// Write implements io.Writer.
func (w recordWriter) Write(p []byte) (int, error) {
	var ev event
	if err := json.Unmarshal(p, &ev); err != nil {
		return 0, errors.Wrap(err, "decode log event")
	}

	sev, _ := ParseSeverity(ev.Level)
	w.f.route(sev, Format(Record{
		Severity: sev,
		Message:  ev.Message,
		Source:   ev.Source,
		Trace:    ev.Trace,
	}))
	return len(p), nil
}

// WriteLevel implements zerolog.LevelWriter. The facility only emits
// NoLevel events and carries its own severity in the level field.
func (w recordWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	return w.Write(p)
}
