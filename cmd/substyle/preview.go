package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/substyle/internal/render"
)

type previewOptions struct {
	queryOptions
	text   string
	states []string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render sample text with a resolved style in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.text, "text", "", "Sample text (defaults to the component name)")
	cmd.Flags().StringSliceVar(&opts.states, "state", nil, "Pseudo-class block to apply, e.g. ':focus'")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions) error {
	s, err := openStylesheet(cmd, rootFlags, "preview")
	if err != nil {
		return err
	}
	res, err := opts.resolve(s, "preview", nil)
	if err != nil {
		return err
	}

	spec := render.Translate(res.props.Style, opts.states...)
	if width := terminalWidth(cmd); width > 0 && spec.Style.GetMaxWidth() == 0 {
		spec.Style = spec.Style.MaxWidth(width)
	}

	text := opts.text
	if text == "" {
		text = res.title()
	}

	fmt.Fprintln(cmd.OutOrStdout(), spec.Render(text))
	if len(spec.Unsupported) > 0 {
		s.log.Warn("declarations not rendered", "keys", spec.Unsupported)
		fmt.Fprintf(cmd.ErrOrStderr(), "not rendered: %s\n", strings.Join(spec.Unsupported, ", "))
	}
	return nil
}

// terminalWidth returns the width of the command output when it is a
// terminal, or 0.
func terminalWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
