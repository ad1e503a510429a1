package config

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/rpw-desktop/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEditor_Defaults(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	for _, kind := range model.EditorKinds() {
		editor := settings.GetEditor(kind)
		if editor.Enabled {
			t.Errorf("Editor %s should be disabled by default", kind)
		}
		if editor.Command != "" {
			t.Errorf("Editor %s should have no command by default, got %s", kind, editor.Command)
		}
		if editor.Args != DefaultEditorArgs {
			t.Errorf("Editor %s: expected default args %s, got %s", kind, DefaultEditorArgs, editor.Args)
		}
		if editor.Usable() {
			t.Errorf("Editor %s should not be usable by default", kind)
		}
	}
}

func TestEditor_SetAndGet(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetEditor(model.EditorImage, Editor{Enabled: true, Command: "gimp", Args: "--new-instance %s"})

	editor := settings.GetEditor(model.EditorImage)
	if !editor.Usable() {
		t.Error("Image editor should be usable")
	}
	if editor.Command != "gimp" {
		t.Errorf("Expected command gimp, got %s", editor.Command)
	}
	if editor.Args != "--new-instance %s" {
		t.Errorf("Expected args '--new-instance %%s', got %s", editor.Args)
	}

	// Other kinds are unaffected
	if settings.GetEditor(model.EditorAudio).Usable() {
		t.Error("Audio editor should not be configured")
	}

	// Empty args fall back to the default template
	settings.SetEditor(model.EditorImage, Editor{Enabled: false, Command: "gimp"})
	editor = settings.GetEditor(model.EditorImage)
	if editor.Args != DefaultEditorArgs {
		t.Errorf("Empty args should default to %s, got %s", DefaultEditorArgs, editor.Args)
	}
	if editor.Usable() {
		t.Error("Disabled editor should not be usable")
	}
}

func TestEditorKeys(t *testing.T) {
	enabled, command, args := EditorKeys(model.EditorText)
	if enabled != "text_editor_enabled" || command != "text_editor_command" || args != "text_editor_args" {
		t.Errorf("Unexpected keys: %s, %s, %s", enabled, command, args)
	}
}

func TestEditor_UsableNeedsCommand(t *testing.T) {
	if (Editor{Enabled: true}).Usable() {
		t.Error("Enabled editor without command should not be usable")
	}
}

func TestLoggingFlags(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLoggingEnabled() != DefaultLoggingEnabled {
		t.Errorf("Expected default logging enabled %v", DefaultLoggingEnabled)
	}
	if settings.GetLogToStdout() != DefaultLogToStdout {
		t.Errorf("Expected default log to stdout %v", DefaultLogToStdout)
	}

	settings.SetLoggingEnabled(false)
	settings.SetLogToStdout(true)

	if settings.GetLoggingEnabled() {
		t.Error("Logging should be disabled")
	}
	if !settings.GetLogToStdout() {
		t.Error("Log to stdout should be enabled")
	}
}

func TestLogFileName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if name := settings.GetLogFileName(); name != DefaultLogFileName {
		t.Errorf("Expected default log file name %s, got %s", DefaultLogFileName, name)
	}

	settings.SetLogFileName("debug.log")
	if name := settings.GetLogFileName(); name != "debug.log" {
		t.Errorf("Expected log file name debug.log, got %s", name)
	}

	settings.SetLogFileName("")
	if name := settings.GetLogFileName(); name != DefaultLogFileName {
		t.Errorf("Empty name should default to %s, got %s", DefaultLogFileName, name)
	}
}

func TestLogDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetLogDirectory()
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("Default log directory should end with %s, got %s", AppName, dir)
	}

	custom := t.TempDir()
	settings.SetLogDirectory(custom)
	if got := settings.GetLogDirectory(); got != custom {
		t.Errorf("Expected log directory %s, got %s", custom, got)
	}
}
