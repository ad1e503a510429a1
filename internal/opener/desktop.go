package opener

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"

	"github.com/ytget/rpw-desktop/internal/model"
)

// ErrUnsupported is returned by Desktop implementations for actions they
// do not provide.
var ErrUnsupported = errors.New("action not supported by desktop integration")

// FyneDesktop is the desktop integration backed by a Fyne application.
// Browse and open go through App.OpenURL; edit is not available.
type FyneDesktop struct {
	app fyne.App
}

// NewFyneDesktop creates a desktop integration for app
func NewFyneDesktop(app fyne.App) *FyneDesktop {
	return &FyneDesktop{app: app}
}

// Supports implements Desktop.
func (d *FyneDesktop) Supports(action model.Action) bool {
	if d == nil || d.app == nil {
		return false
	}
	return action == model.ActionBrowse || action == model.ActionOpen
}

// Browse implements Desktop.
func (d *FyneDesktop) Browse(u *url.URL) error {
	if !d.Supports(model.ActionBrowse) {
		return ErrUnsupported
	}
	return errors.Wrap(d.app.OpenURL(u), "open url")
}

// Open implements Desktop.
func (d *FyneDesktop) Open(path string) error {
	if !d.Supports(model.ActionOpen) {
		return ErrUnsupported
	}
	u, err := FileURL(path)
	if err != nil {
		return err
	}
	return errors.Wrap(d.app.OpenURL(u), "open file url")
}

// Edit implements Desktop.
func (d *FyneDesktop) Edit(string) error {
	return ErrUnsupported
}

// FileURL converts a local path into an absolute file:// URL. The path is
// kept verbatim, so characters such as '#', '?' and '%' stay part of it.
func FileURL(path string) (*url.URL, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get absolute path")
	}
	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		// Windows drive paths become /C:/...
		slashed = "/" + slashed
	}
	return &url.URL{Scheme: "file", Path: slashed}, nil
}

// desktopStrategy asks the desktop integration to perform one action.
type desktopStrategy struct {
	desktop Desktop
	action  model.Action
	log     Logger
}

func (s *desktopStrategy) Name() string { return "desktop." + string(s.action) }

func (s *desktopStrategy) Attempt(target string) model.Attempt {
	s.log.Finer(fmt.Sprintf("Trying to use desktop %s with %s", s.action, target))

	if s.desktop == nil {
		s.log.Warning("Platform is not supported.")
		return model.Attempt{Strategy: s.Name(), Outcome: model.OutcomeUnsupported, Detail: "no desktop integration"}
	}
	if !s.desktop.Supports(s.action) {
		s.log.Warning(fmt.Sprintf("%s is not supported.", s.action))
		return model.Attempt{Strategy: s.Name(), Outcome: model.OutcomeUnsupported, Detail: string(s.action) + " not supported"}
	}

	if err := s.perform(target); err != nil {
		s.log.SevereHeader(fmt.Sprintf("Error using desktop %s.", s.action), err)
		return model.Attempt{Strategy: s.Name(), Outcome: model.OutcomeDesktopFailed, Detail: err.Error()}
	}
	return model.Attempt{Strategy: s.Name(), Outcome: model.OutcomeLaunched}
}

func (s *desktopStrategy) perform(target string) error {
	switch s.action {
	case model.ActionBrowse:
		u, err := url.Parse(target)
		if err != nil {
			return errors.Wrap(err, "invalid uri")
		}
		return s.desktop.Browse(u)
	case model.ActionOpen:
		return s.desktop.Open(target)
	case model.ActionEdit:
		return s.desktop.Edit(target)
	default:
		return ErrUnsupported
	}
}
