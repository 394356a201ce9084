package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
	"github.com/alexisbeaulieu97/substyle/internal/tui"
	"github.com/alexisbeaulieu97/substyle/internal/watch"
)

type exploreOptions struct {
	component string
	text      string
	watch     bool
}

// runProgram runs the explorer; tests swap it out.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func newExploreCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exploreOptions{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore a component interactively",
		Long:  `Launch the interactive explorer to toggle modifiers, descend into elements and preview the resolved style.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Component to explore")
	cmd.Flags().StringVar(&opts.text, "text", "", "Sample text of the preview")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the stylesheet when it changes")
	cmd.MarkFlagRequired("component") //nolint:errcheck

	return cmd
}

func runExplore(cmd *cobra.Command, rootFlags *rootFlags, opts *exploreOptions) error {
	s, err := openStylesheet(cmd, rootFlags, "explore")
	if err != nil {
		return err
	}
	if _, err := s.component("explore", opts.component); err != nil {
		return err
	}

	loader := stylesheet.NewLoader(s.log)
	modelOpts := tui.Options{
		Component: opts.component,
		Reload:    func() (*stylesheet.Document, error) { return loader.Load(s.path) },
		Preview:   opts.text,
		Log:       s.log,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	watchErr := make(chan error, 1)
	if opts.watch {
		w, err := watch.New(s.path, watch.DefaultDelay, s.log)
		if err != nil {
			return newCommandError("explore", "watching stylesheet", err, "Run without --watch and reload with 'r'.")
		}
		defer w.Close()
		go func() { watchErr <- w.Run(ctx) }()
		modelOpts.Changes = w.Changes()
	} else {
		close(watchErr)
	}

	m, err := tui.NewModel(s.doc, modelOpts)
	if err != nil {
		return newCommandError("explore", "creating explorer", err, "Run 'substyle tree' to list the components.")
	}

	s.log.Info("launching explorer", "component", opts.component, "watch", opts.watch)
	runErr := runProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))

	cancel()
	if err := <-watchErr; err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error(err, "watcher stopped")
	}
	if runErr != nil {
		return fmt.Errorf("failed to run explorer: %w", runErr)
	}
	return nil
}
