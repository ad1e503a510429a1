package opener

import (
	"time"

	"github.com/ytget/rpw-desktop/internal/model"
	"github.com/ytget/rpw-desktop/internal/platform"
)

// DefaultLivenessWindow is how long a spawned opener has to fail before it
// counts as launched
const DefaultLivenessWindow = 25 * time.Millisecond

// Options configures an Opener. Zero values select the production defaults.
type Options struct {
	// Family selects the opener command tables. Default: platform.Current()
	Family platform.Family
	// Spawner starts processes. Default: ExecSpawner
	Spawner Spawner
	// Desktop is the platform integration; nil means none is available
	Desktop Desktop
	// Editors provides custom editor commands; nil disables them
	Editors EditorSource
	// Logger receives progress and failure messages. Default: discard
	Logger Logger
	// LivenessWindow, see DefaultLivenessWindow. Negative means no wait.
	LivenessWindow time.Duration
}

// Opener launches external programs for files and URIs
type Opener struct {
	family  platform.Family
	desktop Desktop
	editors EditorSource
	log     Logger
	runner  *runner
}

var _ Launcher = (*Opener)(nil)

// New creates an opener
func New(opts Options) *Opener {
	if opts.Family == "" {
		opts.Family = platform.Current()
	}
	if opts.Spawner == nil {
		opts.Spawner = ExecSpawner{}
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.LivenessWindow == 0 {
		opts.LivenessWindow = DefaultLivenessWindow
	}

	return &Opener{
		family:  opts.Family,
		desktop: opts.Desktop,
		editors: opts.Editors,
		log:     opts.Logger,
		runner: &runner{
			spawner: opts.Spawner,
			window:  opts.LivenessWindow,
			log:     opts.Logger,
		},
	}
}

// Browse opens uri in the user's browser
func (o *Opener) Browse(uri string) bool {
	return o.Do(model.IntentBrowse, uri).Launched()
}

// Open opens path with its default handler
func (o *Opener) Open(path string) bool {
	return o.Do(model.IntentOpen, path).Launched()
}

// EditText opens path in the configured text editor or the default handler
func (o *Opener) EditText(path string) bool {
	return o.Do(model.IntentEditText, path).Launched()
}

// EditImage opens path in the configured image editor or the default handler
func (o *Opener) EditImage(path string) bool {
	return o.Do(model.IntentEditImage, path).Launched()
}

// EditAudio opens path in the configured audio editor or the default handler
func (o *Opener) EditAudio(path string) bool {
	return o.Do(model.IntentEditAudio, path).Launched()
}

// Do walks the strategy chain for intent and stops at the first launch
func (o *Opener) Do(intent model.Intent, target string) *model.Request {
	req := model.NewRequest(intent, target)
	defer req.Finish()

	for _, s := range o.Chain(intent) {
		attempt := s.Attempt(target)
		req.Record(attempt)
		if attempt.Outcome.Launched() {
			break
		}
	}
	return req
}

// Chain returns the ordered strategies for intent
func (o *Opener) Chain(intent model.Intent) []Strategy {
	var chain []Strategy

	switch intent {
	case model.IntentBrowse:
		chain = append(chain, o.commands(platform.URLOpeners(o.family))...)
		chain = append(chain, o.desktopStep(model.ActionBrowse))
	case model.IntentOpen:
		chain = append(chain, o.commands(platform.FileOpeners(o.family))...)
		chain = append(chain, o.desktopStep(model.ActionOpen))
	default:
		kind, ok := intent.EditorKind()
		if !ok {
			return nil
		}
		chain = append(chain, &editorStrategy{runner: o.runner, editors: o.editors, kind: kind})
		chain = append(chain, o.commands(platform.FileOpeners(o.family))...)
		chain = append(chain, o.desktopStep(model.ActionEdit))
	}

	return chain
}

func (o *Opener) commands(names []string) []Strategy {
	steps := make([]Strategy, 0, len(names))
	for _, name := range names {
		steps = append(steps, &commandStrategy{
			runner:  o.runner,
			command: name,
			args:    platform.DefaultOpenerArgs,
		})
	}
	return steps
}

func (o *Opener) desktopStep(action model.Action) Strategy {
	return &desktopStrategy{desktop: o.desktop, action: action, log: o.log}
}

type nopLogger struct{}

func (nopLogger) Finest(string)              {}
func (nopLogger) Finer(string)               {}
func (nopLogger) Warning(string)             {}
func (nopLogger) SevereHeader(string, error) {}
