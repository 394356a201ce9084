package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
	"github.com/alexisbeaulieu97/substyle/pkg/diff"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle/atomic"
)

type diffOptions struct {
	component string
	from      []string
	to        []string
	path      []string
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the CSS a component resolves to under two modifier selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Component to compare")
	cmd.Flags().StringSliceVar(&opts.from, "from", nil, "Modifiers of the left side")
	cmd.Flags().StringSliceVar(&opts.to, "to", nil, "Modifiers of the right side")
	cmd.Flags().StringSliceVarP(&opts.path, "select", "s", nil, "Element to descend into on both sides")
	cmd.MarkFlagRequired("component") //nolint:errcheck

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, opts *diffOptions) error {
	s, err := openStylesheet(cmd, rootFlags, "diff")
	if err != nil {
		return err
	}
	comp, err := s.component("diff", opts.component)
	if err != nil {
		return err
	}

	from, err := resolvedCSS(comp, stylesheet.Query{Modifiers: opts.from, Path: opts.path})
	if err != nil {
		return newCommandError("diff", "resolving the --from side", err, "Check the modifiers against 'substyle tree'.")
	}
	to, err := resolvedCSS(comp, stylesheet.Query{Modifiers: opts.to, Path: opts.path})
	if err != nil {
		return newCommandError("diff", "resolving the --to side", err, "Check the modifiers against 'substyle tree'.")
	}

	out := cmd.OutOrStdout()
	text, stats := diff.Lines(from, to, sideLabel(comp, opts.from), sideLabel(comp, opts.to))
	if text == "" {
		fmt.Fprintln(out, "no differences")
		return nil
	}
	fmt.Fprint(out, text)
	fmt.Fprintf(out, "%d added, %d removed\n", stats.Added, stats.Removed)
	return nil
}

func resolvedCSS(comp *stylesheet.Component, q stylesheet.Query) (string, error) {
	r, err := comp.Resolve(comp.Root(nil), q)
	if err != nil {
		return "", err
	}
	return atomic.RuleCSS(selectorFor(r.ClassName()), r.Style()), nil
}

func sideLabel(comp *stylesheet.Component, modifiers []string) string {
	if len(modifiers) == 0 {
		return comp.Name
	}
	return comp.Name + " " + strings.Join(modifiers, " ")
}
