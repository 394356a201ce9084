package stylesheet

import (
	"fmt"
	"os"
	"regexp"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/substyle/internal/logger"
	stylerrors "github.com/alexisbeaulieu97/substyle/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Loader reads and validates stylesheet documents.
type Loader struct {
	log *logger.Logger
}

// NewLoader returns a Loader logging through log. A nil log is allowed.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the document at path.
func (l *Loader) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stylerrors.NewParseError(path, 0, err)
	}

	doc, err := l.Parse(data, path)
	if err != nil {
		l.log.With("path", path).Error(err, "stylesheet rejected")
		return nil, err
	}
	l.log.Debug("stylesheet loaded", "path", path, "components", len(doc.Components))
	return doc, nil
}

// Parse decodes and validates a document. path is only used in errors.
func (l *Loader) Parse(data []byte, path string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, stylerrors.NewParseError(path, extractLine(err), err)
	}
	doc.Path = path

	applyAutoClass(&doc)

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads the document at path without logging.
func Load(path string) (*Document, error) {
	return NewLoader(nil).Load(path)
}

// applyAutoClass derives class names from component names when enabled.
func applyAutoClass(doc *Document) {
	if !doc.Settings.AutoClass {
		return
	}
	for i := range doc.Components {
		comp := &doc.Components[i]
		if comp.ClassName != "" || comp.ClassNames != nil {
			continue
		}
		comp.ClassName = ClassNameFor(doc.Settings.Prefix, comp.Name)
	}
}

// ClassNameFor slugifies name into a class name: "Primary Button" becomes
// "primary-button", or "ui-primary-button" with prefix "ui".
func ClassNameFor(prefix, name string) string {
	class := slug.Make(name)
	if prefix != "" {
		class = prefix + "-" + class
	}
	return class
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
