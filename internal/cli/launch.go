package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ytget/rpw-desktop/internal/model"
)

func newCmdBrowse(rt *session) *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "browse <uri>",
		Short: "Open a URI in the web browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.launch(model.IntentBrowse, args[0], report)
		},
	}
	addReportFlag(cmd, &report)
	return cmd
}

func newCmdOpen(rt *session) *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Open a file with its default program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.launch(model.IntentOpen, args[0], report)
		},
	}
	addReportFlag(cmd, &report)
	return cmd
}

func newCmdEdit(rt *session) *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "edit <" + kindChoices("|") + "> <path>",
		Short: "Open a file in the configured editor for its kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			return rt.launch(kind.Intent(), args[1], report)
		},
	}
	addReportFlag(cmd, &report)
	return cmd
}

func addReportFlag(cmd *cobra.Command, report *bool) {
	cmd.Flags().BoolVar(report, "report", false, "Print every attempt made")
}

func (rt *session) launch(intent model.Intent, target string, report bool) error {
	req := rt.opener.Do(intent, target)
	rt.log.Fine(req.Summary())

	if report {
		printReport(rt, req)
	}
	if !req.Launched() {
		return errors.Errorf("no opener could handle %s %s", intent, target)
	}
	return nil
}

func printReport(rt *session, req *model.Request) {
	fmt.Fprintf(rt.out, "%s (request %s)\n", req.Summary(), req.ID)
	for i, a := range req.Attempts {
		// "!" marks a process that was started or tried but did not stay up
		mark := "  "
		if a.Outcome.IsProcessFailure() {
			mark = "! "
		}
		line := fmt.Sprintf("%s%d. %-14s %s", mark, i+1, a.Strategy, a.Outcome)
		if a.Detail != "" {
			line += ": " + a.Detail
		}
		fmt.Fprintln(rt.out, line)
	}
}

func parseKind(name string) (model.EditorKind, error) {
	kind, ok := model.ParseEditorKind(name)
	if !ok {
		return "", errors.Errorf("unknown editor kind %q, expected one of %s", name, kindChoices(", "))
	}
	return kind, nil
}

func kindChoices(sep string) string {
	kinds := model.EditorKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return strings.Join(names, sep)
}
