package opener

import (
	"net/url"
	"time"

	"github.com/ytget/rpw-desktop/internal/config"
	"github.com/ytget/rpw-desktop/internal/model"
)

// Launcher defines the interface for the opener service.
type Launcher interface {
	Browse(uri string) bool
	Open(path string) bool
	EditText(path string) bool
	EditImage(path string) bool
	EditAudio(path string) bool

	// Do runs the chain for intent and returns every attempt made
	Do(intent model.Intent, target string) *model.Request
}

// Logger is the subset of the log facility the opener writes to.
// *logging.Facility satisfies it.
type Logger interface {
	Finest(msg string)
	Finer(msg string)
	Warning(msg string)
	SevereHeader(msg string, err error)
}

// Process is a started external program.
type Process interface {
	// Exited waits up to window for the process to end and reports whether
	// it did, with its exit code. A window of zero does not wait.
	Exited(window time.Duration) (bool, int)
}

// Spawner starts external programs.
type Spawner interface {
	Spawn(argv []string) (Process, error)
}

// Desktop is the platform integration service. Callers must check Supports
// before using an action.
type Desktop interface {
	Supports(action model.Action) bool
	Browse(u *url.URL) error
	Open(path string) error
	Edit(path string) error
}

// EditorSource provides the configured custom editor for a media kind.
// *config.Settings satisfies it.
type EditorSource interface {
	GetEditor(kind model.EditorKind) config.Editor
}

// Strategy is one step of a fallback chain.
type Strategy interface {
	Name() string
	Attempt(target string) model.Attempt
}
