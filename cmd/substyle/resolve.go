package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/inspect"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle/atomic"
)

const (
	formatJSON = "json"
	formatCSS  = "css"
	formatTree = "tree"
	formatDump = "dump"
)

type resolveOptions struct {
	queryOptions
	format string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the style of a component, its modifiers and elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.format, "format", formatTree, "Output format: json, css, tree or dump")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions) error {
	switch opts.format {
	case formatJSON, formatCSS, formatTree, formatDump:
	default:
		return newCommandError("resolve", "validating format", fmt.Errorf("unknown format %q", opts.format), "Use one of json, css, tree or dump.")
	}

	s, err := openStylesheet(cmd, rootFlags, "resolve")
	if err != nil {
		return err
	}
	res, err := opts.resolve(s, "resolve", nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		return renderResolveJSON(cmd, res)
	case formatCSS:
		fmt.Fprint(out, atomic.RuleCSS(selectorFor(res.props.ClassName), res.props.Style))
	case formatDump:
		fmt.Fprint(out, inspect.Dump(res.props))
	default:
		fmt.Fprint(out, inspect.Props(res.title(), res.props))
	}
	return nil
}

type resolveJSONPayload struct {
	Component string         `json:"component"`
	Modifiers []string       `json:"modifiers,omitempty"`
	Path      []string       `json:"path,omitempty"`
	ClassName string         `json:"className,omitempty"`
	Style     substyle.Tree  `json:"style,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

func renderResolveJSON(cmd *cobra.Command, res resolution) error {
	payload := resolveJSONPayload{
		Component: res.component.Name,
		Modifiers: res.component.Selection(res.query),
		Path:      res.query.Path,
		ClassName: res.props.ClassName,
		Style:     res.props.Style,
		Attrs:     res.props.Attrs,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// selectorFor turns a class list into a compound class selector. Nodes
// without a class name get the universal selector.
func selectorFor(className string) string {
	classes := strings.Fields(className)
	if len(classes) == 0 {
		return "*"
	}
	return "." + strings.Join(classes, ".")
}
