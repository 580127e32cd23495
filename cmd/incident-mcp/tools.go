package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/toolbox"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tool catalogue",
		RunE:  runTools,
	}
}

func runTools(cmd *cobra.Command, _ []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	tb, _, err := buildToolBox(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tARGUMENTS")

	for _, t := range tb.Tools() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Title, formatArgs(t.Schema))
	}

	return w.Flush()
}

// formatArgs renders a schema's properties as "name:type" pairs, optional
// ones in brackets.
func formatArgs(s *toolbox.Schema) string {
	if s == nil || len(s.Properties()) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(s.Properties()))
	for _, p := range s.Properties() {
		arg := p.Name + ":" + p.Type
		if !p.Required {
			arg = "[" + arg + "]"
		}
		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke one tool locally and print the result",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runCall,
	}
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	tb, _, err := buildToolBox(cfg)
	if err != nil {
		return err
	}

	rawArgs := json.RawMessage("{}")
	if len(args) == 2 {
		rawArgs = json.RawMessage(args[1])
	}

	result, err := tb.Call(cmd.Context(), args[0], rawArgs)
	if err != nil {
		return err
	}

	fmt.Println(result.Content)

	if result.IsError {
		return &ExitError{Code: 1, Message: "tool call failed"}
	}

	return nil
}
