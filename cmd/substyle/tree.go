package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/inspect"
	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

type treeOptions struct {
	component string
}

func newTreeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the style definition of every component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Only print this component")

	return cmd
}

func runTree(cmd *cobra.Command, rootFlags *rootFlags, opts *treeOptions) error {
	s, err := openStylesheet(cmd, rootFlags, "tree")
	if err != nil {
		return err
	}

	components := s.doc.Components
	if opts.component != "" {
		comp, err := s.component("tree", opts.component)
		if err != nil {
			return err
		}
		components = stylesheet.Components{*comp}
	}

	out := cmd.OutOrStdout()
	for i := range components {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, inspect.Tree(treeTitle(&components[i]), definition(&components[i])))
	}
	return nil
}

// definition is the tree a component resolves from: its default style with
// the caller style merged over it.
func definition(comp *stylesheet.Component) substyle.Tree {
	return substyle.Merge(comp.Default, comp.Style)
}

func treeTitle(comp *stylesheet.Component) string {
	title := comp.Name
	if base := comp.Root(nil).ClassName(); base != "" {
		title += " ." + base
	}
	if len(comp.Modifiers) > 0 {
		title += fmt.Sprintf(" %v", comp.Modifiers)
	}
	return title
}
