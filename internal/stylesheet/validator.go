package stylesheet

import (
	stdErrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	stylerrors "github.com/alexisbeaulieu97/substyle/pkg/errors"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	classNamePattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
)

// validatorInstance returns the shared validator with the stylesheet tags
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if strings.TrimSpace(name) == "" {
				return false
			}
			return strings.IndexFunc(name, unicode.IsControl) < 0
		})

		_ = v.RegisterValidation("class_name", func(fl validator.FieldLevel) bool {
			return classNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("modifier_key", func(fl validator.FieldLevel) bool {
			key := fl.Field().String()
			return substyle.IsModifier(key) && len(key) > 1 && !strings.ContainsAny(key, " \t")
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks doc and reports every problem found.
func Validate(doc *Document) error {
	if doc == nil {
		return stylerrors.NewValidationError("", "document is empty", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	var errs error
	seen := make(map[string]bool, len(doc.Components))
	for _, comp := range doc.Components {
		field := "components." + comp.Name
		if seen[comp.Name] {
			errs = multierr.Append(errs, stylerrors.NewValidationError(field, "duplicate component", nil))
		}
		seen[comp.Name] = true

		for _, m := range comp.ClassNames {
			if m.Name == "" {
				errs = multierr.Append(errs, stylerrors.NewValidationError(field+".classNames", "empty class name key", nil))
			}
		}
		errs = multierr.Append(errs, validateTree(field+".default", comp.Default))
		errs = multierr.Append(errs, validateTree(field+".style", comp.Style))
	}
	return errs
}

// validateTree rejects keys that cannot be selected: empty keys and a bare
// modifier sigil.
func validateTree(field string, tree substyle.Tree) error {
	var errs error
	for _, e := range tree {
		switch {
		case e.Key == "":
			errs = multierr.Append(errs, stylerrors.NewValidationError(field, "empty key", nil))
			continue
		case e.Key == string(substyle.ModifierSigil):
			errs = multierr.Append(errs, stylerrors.NewValidationError(field, "modifier key without a name", nil))
			continue
		}
		if sub, ok := substyle.AsTree(e.Value); ok {
			errs = multierr.Append(errs, validateTree(field+"."+e.Key, sub))
		}
	}
	return errs
}

// convertValidationError reports every failed field of a validator error.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !stdErrors.As(err, &ves) {
		return stylerrors.NewValidationError("stylesheet", err.Error(), err)
	}

	var errs error
	for _, ve := range ves {
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		errs = multierr.Append(errs, stylerrors.NewValidationError(field, msg, ve))
	}
	return errs
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
