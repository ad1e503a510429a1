package opener

import (
	"fmt"
	"strings"
	"time"

	"github.com/ytget/rpw-desktop/internal/model"
	"github.com/ytget/rpw-desktop/internal/platform"
)

// PrepareCommand builds the argument vector for command. Each
// whitespace-separated token of args becomes one argument, with every
// placeholder replaced by target.
func PrepareCommand(command, args, target string) []string {
	parts := []string{command}
	for _, token := range strings.Fields(args) {
		token = strings.ReplaceAll(token, platform.PathPlaceholder, target)
		parts = append(parts, strings.TrimSpace(token))
	}
	return parts
}

// runner spawns a command and applies the liveness check.
type runner struct {
	spawner Spawner
	window  time.Duration
	log     Logger
}

func (r *runner) run(name, command, args, target string) model.Attempt {
	r.log.Finer(fmt.Sprintf("Trying to exec:\n   cmd = %s\n   args = %s\n   %s = %s",
		command, args, platform.PathPlaceholder, target))

	proc, err := r.spawner.Spawn(PrepareCommand(command, args, target))
	if err != nil {
		r.log.SevereHeader("Error running command.", err)
		return model.Attempt{Strategy: name, Outcome: model.OutcomeSpawnFailed, Detail: err.Error()}
	}

	exited, code := proc.Exited(r.window)
	switch {
	case !exited:
		r.log.Finest("Process is running.")
		return model.Attempt{Strategy: name, Outcome: model.OutcomeLaunched}
	case code == 0:
		r.log.Warning("Process ended immediately.")
		return model.Attempt{Strategy: name, Outcome: model.OutcomeExited, Detail: "exit status 0"}
	default:
		r.log.Warning("Process crashed.")
		return model.Attempt{Strategy: name, Outcome: model.OutcomeCrashed, Detail: fmt.Sprintf("exit status %d", code)}
	}
}

// commandStrategy runs a fixed platform opener such as xdg-open.
type commandStrategy struct {
	runner  *runner
	command string
	args    string
}

func (s *commandStrategy) Name() string { return s.command }

func (s *commandStrategy) Attempt(target string) model.Attempt {
	return s.runner.run(s.command, s.command, s.args, target)
}

// editorStrategy runs the custom editor configured for a media kind.
// The configuration is read on every attempt so settings changes apply
// without rebuilding the opener.
type editorStrategy struct {
	runner  *runner
	editors EditorSource
	kind    model.EditorKind
}

func (s *editorStrategy) Name() string { return "editor." + string(s.kind) }

func (s *editorStrategy) Attempt(target string) model.Attempt {
	if s.editors == nil {
		return model.Attempt{Strategy: s.Name(), Outcome: model.OutcomeSkipped, Detail: "no editor settings"}
	}
	editor := s.editors.GetEditor(s.kind)
	if !editor.Usable() {
		return model.Attempt{Strategy: s.Name(), Outcome: model.OutcomeSkipped, Detail: "editor disabled"}
	}
	return s.runner.run(s.Name(), editor.Command, editor.Args, target)
}
