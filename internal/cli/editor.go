package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/rpw-desktop/internal/config"
	"github.com/ytget/rpw-desktop/internal/model"
)

func newCmdEditor(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Manage custom editor commands",
	}
	cmd.AddCommand(newCmdEditorShow(rt))
	cmd.AddCommand(newCmdEditorSet(rt))
	return cmd
}

func newCmdEditorShow(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configured editors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range model.EditorKinds() {
				fmt.Fprintln(rt.out, formatEditor(kind, rt.settings.GetEditor(kind)))
			}
			return nil
		},
	}
}

type editorSetOptions struct {
	command string
	args    string
	enable  bool
	disable bool
}

func newCmdEditorSet(rt *session) *cobra.Command {
	opts := &editorSetOptions{}

	cmd := &cobra.Command{
		Use:   "set <" + kindChoices("|") + ">",
		Short: "Change the editor used for a media kind",
		Long: `Change the editor used for a media kind.

The argument template is split on whitespace and every %s in it is
replaced by the file path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			editor := rt.settings.GetEditor(kind)
			flags := cmd.Flags()
			if flags.Changed("command") {
				editor.Command = opts.command
			}
			if flags.Changed("args") {
				editor.Args = opts.args
			}
			if opts.enable {
				editor.Enabled = true
			}
			if opts.disable {
				editor.Enabled = false
			}
			rt.settings.SetEditor(kind, editor)

			saved := rt.settings.GetEditor(kind)
			rt.log.Info("Editor changed: " + formatEditor(kind, saved))
			fmt.Fprintln(rt.out, formatEditor(kind, saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.command, "command", "", "Executable to run")
	cmd.Flags().StringVar(&opts.args, "args", config.DefaultEditorArgs, "Argument template")
	cmd.Flags().BoolVar(&opts.enable, "enable", false, "Use this editor")
	cmd.Flags().BoolVar(&opts.disable, "disable", false, "Stop using this editor")
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")

	return cmd
}

func formatEditor(kind model.EditorKind, e config.Editor) string {
	state := "disabled"
	if e.Enabled {
		state = "enabled"
	}
	command := e.Command
	if command == "" {
		command = "(none)"
	}
	return fmt.Sprintf("%-6s %-9s %s %s", kind, state, command, e.Args)
}
