package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ytget/rpw-desktop/internal/platform"
)

// Defaults applied by New when a Config field is left empty.
const (
	DefaultFileName  = "runtime.log"
	DefaultMaxSizeMB = 10

	timestampLayout = "2006/01/02 15:04:05"
)

// Config holds the inputs of a Facility.
type Config struct {
	// Dir is the directory that holds the log file. Init fails when empty.
	Dir string
	// FileName is the name of the log file inside Dir.
	// Default: DefaultFileName
	FileName string
	// FilePrefix selects the files Init deletes from Dir before opening the log.
	// Default: FileName without its extension, so size-rotated backups go too.
	FilePrefix string
	// Enabled is the initial value of the enabled flag. Init turns it on.
	Enabled bool
	// PrintToStdout is the initial value of the mirroring flag.
	PrintToStdout bool
	// MaxSizeMB caps the log file before it is rotated within a run.
	// Default: DefaultMaxSizeMB
	MaxSizeMB int
	// Stdout and Stderr receive mirrored records. Default: os.Stdout, os.Stderr
	Stdout io.Writer
	Stderr io.Writer
}

func (c Config) withDefaults() Config {
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if c.FilePrefix == "" {
		c.FilePrefix = strings.TrimSuffix(c.FileName, filepath.Ext(c.FileName))
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	return c
}

// Facility is the process-wide logging handle. Create one with New, call
// Init once at startup and pass the pointer to whoever needs to log.
type Facility struct {
	cfg     Config
	logger  zerolog.Logger
	enabled atomic.Bool
	mirror  atomic.Bool
	file    atomic.Pointer[lumberjack.Logger]
	now     func() time.Time
}

// New creates a facility. Until Init succeeds records only reach the
// mirror streams.
func New(cfg Config) *Facility {
	f := &Facility{
		cfg: cfg.withDefaults(),
		now: time.Now,
	}
	f.enabled.Store(cfg.Enabled)
	f.mirror.Store(cfg.PrintToStdout)
	f.logger = zerolog.New(recordWriter{f: f})
	return f
}

// Init wipes old log files, opens a fresh one and enables logging.
// On failure logging keeps its previous enabled state and the returned
// error is meant to be printed by the host; it is never fatal.
func (f *Facility) Init() error {
	err := f.openFile()
	if err == nil {
		f.enabled.Store(true)
	}

	f.Info("Main logger initialized.")
	f.Info(f.now().Format(timestampLayout))
	return err
}

func (f *Facility) openFile() error {
	if f.cfg.Dir == "" {
		return errors.New("log directory is not configured")
	}

	if err := platform.CreateDirectoryIfNotExists(f.cfg.Dir); err != nil {
		return errors.Wrapf(err, "create log directory %s", f.cfg.Dir)
	}
	if _, err := platform.RemoveFilesWithPrefix(f.cfg.Dir, f.cfg.FilePrefix); err != nil {
		return errors.Wrap(err, "remove old log files")
	}

	path := filepath.Join(f.cfg.Dir, f.cfg.FileName)
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return errors.Wrapf(err, "create log file %s", path)
	}
	if err := fh.Close(); err != nil {
		return errors.Wrapf(err, "create log file %s", path)
	}

	// A sink from an earlier Init stays attached until the new file exists.
	sink := &lumberjack.Logger{
		Filename:  path,
		MaxSize:   f.cfg.MaxSizeMB,
		LocalTime: true,
	}
	if old := f.file.Swap(sink); old != nil {
		_ = old.Close()
	}
	return nil
}

// Close releases the log file. Logging to mirrors keeps working.
func (f *Facility) Close() error {
	if sink := f.file.Swap(nil); sink != nil {
		return sink.Close()
	}
	return nil
}

// FilePath returns the path of the open log file, or "" before Init.
func (f *Facility) FilePath() string {
	if sink := f.file.Load(); sink != nil {
		return sink.Filename
	}
	return ""
}

// Enable turns logging on or off for all subsequent calls.
func (f *Facility) Enable(flag bool) {
	f.enabled.Store(flag)
}

// Enabled reports whether logging is on.
func (f *Facility) Enabled() bool {
	return f.enabled.Load()
}

// SetPrintToStdout turns mirroring to stdout/stderr on or off.
func (f *Facility) SetPrintToStdout(flag bool) {
	f.mirror.Store(flag)
}

// PrintsToStdout reports whether mirroring is on.
func (f *Facility) PrintsToStdout() bool {
	return f.mirror.Load()
}

// Finest logs the least important tracing message.
func (f *Facility) Finest(msg string) { f.log(SeverityFinest, msg) }

// Finer logs a less important tracing message.
func (f *Facility) Finer(msg string) { f.log(SeverityFiner, msg) }

// Fine logs an important tracing message.
func (f *Facility) Fine(msg string) { f.log(SeverityFine, msg) }

// Info logs an informational message.
func (f *Facility) Info(msg string) { f.log(SeverityInfo, msg) }

// Warning logs a recoverable problem.
func (f *Facility) Warning(msg string) { f.log(SeverityWarning, msg) }

// Severe logs a failure.
func (f *Facility) Severe(msg string) { f.log(SeveritySevere, msg) }

// SevereError logs a failure with err attached; the record carries the
// calling function and the full rendered error, including any stack
// recorded by github.com/pkg/errors.
func (f *Facility) SevereError(msg string, err error) {
	if !f.enabled.Load() {
		return
	}
	if err == nil {
		f.emit(SeveritySevere, msg, nil, "")
		return
	}
	f.emit(SeveritySevere, msg, err, callerName(2))
}

// SevereHeader logs a failure followed by only the error message.
func (f *Facility) SevereHeader(msg string, err error) {
	if err != nil {
		msg = msg + lineSeparator + err.Error()
	}
	f.log(SeveritySevere, msg)
}

// Error logs err on its own with its full trace.
func (f *Facility) Error(err error) {
	if !f.enabled.Load() || err == nil {
		return
	}
	f.emit(SeveritySevere, err.Error(), err, callerName(2))
}

func (f *Facility) log(sev Severity, msg string) {
	if !f.enabled.Load() {
		return
	}
	f.emit(sev, msg, nil, "")
}

func (f *Facility) emit(sev Severity, msg string, err error, source string) {
	ev := f.logger.Log().Str(zerolog.LevelFieldName, sev.String())
	if err != nil {
		ev = ev.Err(err).
			Str(fieldSource, source).
			Str(fieldTrace, fmt.Sprintf("%+v", err))
	}
	ev.Msg(msg)
}

// route writes a formatted record to the file and, when mirroring, to the
// stream matching its severity.
func (f *Facility) route(sev Severity, text string) {
	if sink := f.file.Load(); sink != nil {
		_, _ = io.WriteString(sink, text)
	}

	if !f.mirror.Load() {
		return
	}
	switch {
	case sev.toStdout():
		_, _ = io.WriteString(f.cfg.Stdout, text)
	case sev.toStderr():
		_, _ = io.WriteString(f.cfg.Stderr, text)
	}
}

// callerName returns "pkg.Func" for the function skip frames above it.
func callerName(skip int) string {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+1, pcs) == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	name := frame.Function
	if name == "" {
		return "unknown"
	}
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
