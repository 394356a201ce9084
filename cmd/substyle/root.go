package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/logger"
)

const defaultStylesheet = "styles.yaml"

type rootFlags struct {
	verbose bool
	file    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "substyle",
		Short:         "Substyle resolves component styles from declarative stylesheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.file, "file", "f", defaultStylesheet, "Path to the stylesheet")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newTreeCmd(flags))
	cmd.AddCommand(newSheetCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newGalleryCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Entries go to the command's error
// stream so that command output stays clean.
func (f *rootFlags) logger(cmd *cobra.Command, component string) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
}
