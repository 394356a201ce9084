package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/logger"
	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
)

// session is what every stylesheet command starts from.
type session struct {
	path string
	log  *logger.Logger
	doc  *stylesheet.Document
}

func openStylesheet(cmd *cobra.Command, flags *rootFlags, operation string) (*session, error) {
	log, err := flags.logger(cmd, "command."+operation)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Check the logging flags.")
	}

	path, err := validateStylesheetPath(flags.file)
	if err != nil {
		return nil, newCommandError(operation, "locating stylesheet", err, "Pass an existing stylesheet with --file.")
	}

	doc, err := stylesheet.NewLoader(log).Load(path)
	if err != nil {
		return nil, newCommandError(operation, "loading stylesheet", err, "Fix the reported problem and run the command again.")
	}

	return &session{path: path, log: log, doc: doc}, nil
}

// component looks up name, reporting the known components on failure.
func (s *session) component(operation, name string) (*stylesheet.Component, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newCommandError(operation, "validating component", fmt.Errorf("component name cannot be empty"),
			fmt.Sprintf("Pick one of: %s.", strings.Join(s.doc.Components.Names(), ", ")))
	}
	comp, err := s.doc.Lookup(name)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("looking up component %q", name), err, "Run 'substyle tree' to list the components.")
	}
	return comp, nil
}

func validateStylesheetPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("stylesheet path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve stylesheet path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stylesheet does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("stylesheet path %s is a directory", abs)
	}

	return abs, nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
