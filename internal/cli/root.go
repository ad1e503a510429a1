package cli

import (
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/rpw-desktop/internal/config"
	"github.com/ytget/rpw-desktop/internal/logging"
	"github.com/ytget/rpw-desktop/internal/opener"
	"github.com/ytget/rpw-desktop/internal/platform"
)

// EnvPrefix is prepended to override keys, e.g. RPW_LOG_STDOUT
const EnvPrefix = "RPW"

// Override keys; each one is also a persistent flag
const (
	keyLogStdout  = "log-stdout"
	keyLogEnabled = "log-enabled"
)

// Options replaces parts of the session, mainly for tests.
// Zero values select the production implementations.
type Options struct {
	Version string
	Family  platform.Family
	Spawner opener.Spawner
	// Desktop defaults to a FyneDesktop for the host app
	Desktop opener.Desktop
}

// session is what subcommands work with once the root has prepared it
type session struct {
	settings *config.Settings
	log      *logging.Facility
	opener   opener.Launcher
	out      io.Writer
	errOut   io.Writer
}

// NewRootCmd creates the rpw command tree for app
func NewRootCmd(app fyne.App, opts Options) *cobra.Command {
	v := viper.New()
	rt := &session{}

	cmd := &cobra.Command{
		Use:   "rpw",
		Short: "Open resource pack files and links with external programs",
		Long: `rpw launches the right external program for a file or link.

Examples:
  rpw browse https://example.com/pack
  rpw open ./pack.png
  rpw edit image ./textures/stone.png
  rpw editor set image --command gimp --args "%s" --enable`,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.prepare(cmd, app, v, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt.log == nil {
				return nil
			}
			return rt.log.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.Bool(keyLogStdout, config.DefaultLogToStdout, "Mirror log records to stdout and stderr")
	flags.Bool(keyLogEnabled, config.DefaultLoggingEnabled, "Write log records")
	bindFlags(v, flags)

	cmd.AddCommand(newCmdBrowse(rt))
	cmd.AddCommand(newCmdOpen(rt))
	cmd.AddCommand(newCmdEdit(rt))
	cmd.AddCommand(newCmdEditor(rt))

	return cmd
}

// bindFlags exposes every flag in set to v, with RPW_* environment fallbacks
func bindFlags(v *viper.Viper, set *pflag.FlagSet) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	set.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

func (rt *session) prepare(cmd *cobra.Command, app fyne.App, v *viper.Viper, opts Options) error {
	if app == nil {
		return errors.New("no application to read settings from")
	}

	rt.settings = config.NewSettings(app)
	rt.out = cmd.OutOrStdout()
	rt.errOut = cmd.ErrOrStderr()

	// Stored settings apply unless a flag or environment variable overrides them
	v.SetDefault(keyLogStdout, rt.settings.GetLogToStdout())
	v.SetDefault(keyLogEnabled, rt.settings.GetLoggingEnabled())

	rt.log = logging.New(logging.Config{
		Dir:           rt.settings.GetLogDirectory(),
		FileName:      rt.settings.GetLogFileName(),
		PrintToStdout: v.GetBool(keyLogStdout),
		Stdout:        rt.out,
		Stderr:        rt.errOut,
	})
	if err := rt.log.Init(); err != nil {
		fmt.Fprintf(rt.errOut, "Failed to initialize log file: %v\n", err)
	}
	rt.log.Enable(v.GetBool(keyLogEnabled))
	rt.log.Fine(fmt.Sprintf("rpw %s, command %q", opts.Version, cmd.CommandPath()))

	desktop := opts.Desktop
	if desktop == nil {
		desktop = opener.NewFyneDesktop(app)
	}
	rt.opener = opener.New(opener.Options{
		Family:  opts.Family,
		Spawner: opts.Spawner,
		Desktop: desktop,
		Editors: rt.settings,
		Logger:  rt.log,
	})
	return nil
}
