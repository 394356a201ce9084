package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle/atomic"
)

type sheetOptions struct {
	prefix string
}

func newSheetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &sheetOptions{}

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Generate atomic CSS for every component and element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheet(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.prefix, "prefix", atomic.DefaultPrefix, "Prefix of generated class names")

	return cmd
}

func runSheet(cmd *cobra.Command, rootFlags *rootFlags, opts *sheetOptions) error {
	s, err := openStylesheet(cmd, rootFlags, "sheet")
	if err != nil {
		return err
	}

	sheet := atomic.NewSheet(opts.prefix)
	out := cmd.OutOrStdout()
	for i := range s.doc.Components {
		comp := &s.doc.Components[i]
		r, err := comp.Resolve(comp.Root(sheet.Decorator()), stylesheet.Query{})
		if err != nil {
			return newCommandError("sheet", fmt.Sprintf("resolving component %q", comp.Name), err, "Run 'substyle tree' to inspect the component.")
		}
		err = walkElements(r, []string{comp.Name}, func(path []string, node *substyle.Resolver) {
			fmt.Fprintf(out, "/* %s: %s */\n", strings.Join(path, " › "), node.ClassName())
		})
		if err != nil {
			return newCommandError("sheet", fmt.Sprintf("resolving elements of %q", comp.Name), err, "Run 'substyle tree' to inspect the component.")
		}
	}

	s.log.Debug("sheet generated", "rules", sheet.Len())
	if sheet.Len() > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprint(out, sheet.CSS())
	return nil
}

// walkElements visits r and then every element below it, depth first in
// definition order.
func walkElements(r *substyle.Resolver, path []string, visit func([]string, *substyle.Resolver)) error {
	visit(path, r)
	def := r.Definition()
	for _, key := range def.Keys() {
		if substyle.IsModifier(key) || substyle.IsDirectKey(key) {
			continue
		}
		if _, ok := def.Subtree(key); !ok {
			continue
		}
		child, err := r.Select(key)
		if err != nil {
			return err
		}
		if err := walkElements(child, append(path[:len(path):len(path)], key), visit); err != nil {
			return err
		}
	}
	return nil
}
