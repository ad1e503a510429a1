package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/rpw-desktop/internal/model"
	"github.com/ytget/rpw-desktop/internal/platform"
)

// AppName is used for the application data directory
const AppName = "rpw"

// Settings keys for Fyne preferences
const (
	KeyLoggingEnabled = "logging_enabled"
	KeyLogToStdout    = "log_to_stdout"
	KeyLogFileName    = "log_file_name"
	KeyLogDirectory   = "log_directory"

	// Editor keys are prefixed with the editor kind, e.g. "image_editor_command"
	editorEnabledSuffix = "_editor_enabled"
	editorCommandSuffix = "_editor_command"
	editorArgsSuffix    = "_editor_args"
)

// Default values
const (
	DefaultLoggingEnabled = true
	DefaultLogToStdout    = false
	DefaultLogFileName    = "runtime.log"
	DefaultEditorArgs     = platform.PathPlaceholder
)

// Editor is a custom external editor for one media kind
type Editor struct {
	Enabled bool
	Command string
	// Args is a whitespace-separated template; "%s" is replaced by the file path
	Args string
}

// Usable returns true if the editor should be tried
func (e Editor) Usable() bool {
	return e.Enabled && e.Command != ""
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// EditorKeys returns the enabled, command and args keys for kind
func EditorKeys(kind model.EditorKind) (enabled, command, args string) {
	prefix := string(kind)
	return prefix + editorEnabledSuffix, prefix + editorCommandSuffix, prefix + editorArgsSuffix
}

// GetEditor returns the custom editor configured for kind
func (s *Settings) GetEditor(kind model.EditorKind) Editor {
	enabledKey, commandKey, argsKey := EditorKeys(kind)
	prefs := s.app.Preferences()
	return Editor{
		Enabled: prefs.BoolWithFallback(enabledKey, false),
		Command: prefs.String(commandKey),
		Args:    prefs.StringWithFallback(argsKey, DefaultEditorArgs),
	}
}

// SetEditor stores the custom editor for kind
func (s *Settings) SetEditor(kind model.EditorKind, editor Editor) {
	enabledKey, commandKey, argsKey := EditorKeys(kind)
	if editor.Args == "" {
		editor.Args = DefaultEditorArgs
	}
	prefs := s.app.Preferences()
	prefs.SetBool(enabledKey, editor.Enabled)
	prefs.SetString(commandKey, editor.Command)
	prefs.SetString(argsKey, editor.Args)
}

// GetLoggingEnabled returns whether logging is enabled
func (s *Settings) GetLoggingEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyLoggingEnabled, DefaultLoggingEnabled)
}

// SetLoggingEnabled sets whether logging is enabled
func (s *Settings) SetLoggingEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyLoggingEnabled, enabled)
}

// GetLogToStdout returns whether log records are mirrored to stdout/stderr
func (s *Settings) GetLogToStdout() bool {
	return s.app.Preferences().BoolWithFallback(KeyLogToStdout, DefaultLogToStdout)
}

// SetLogToStdout sets whether log records are mirrored to stdout/stderr
func (s *Settings) SetLogToStdout(mirror bool) {
	s.app.Preferences().SetBool(KeyLogToStdout, mirror)
}

// GetLogFileName returns the log file name
func (s *Settings) GetLogFileName() string {
	name := s.app.Preferences().String(KeyLogFileName)
	if name == "" {
		s.SetLogFileName(DefaultLogFileName)
		return DefaultLogFileName
	}
	return name
}

// SetLogFileName sets the log file name
func (s *Settings) SetLogFileName(name string) {
	if name == "" {
		name = DefaultLogFileName
	}
	s.app.Preferences().SetString(KeyLogFileName, name)
}

// GetLogDirectory returns the directory holding the log file
func (s *Settings) GetLogDirectory() string {
	dir := s.app.Preferences().String(KeyLogDirectory)
	if dir == "" {
		// Use the per-user application data directory
		defaultDir, err := platform.AppDataDir(AppName)
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLogDirectory sets the directory holding the log file
func (s *Settings) SetLogDirectory(dir string) {
	s.app.Preferences().SetString(KeyLogDirectory, dir)
}
