// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/thatcatcamp/themevars/internal/colorparse"
)

var (
	themeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	familyPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	labelPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for _, tag := range []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{"themename", themeNamePattern},
		{"family", familyPattern},
		{"label", labelPattern},
	} {
		pattern := tag.pattern
		err := v.RegisterValidation(tag.name, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("themes: register %q validation: %v", tag.name, err))
		}
	}
	return v
}

// Validate reports everything in o that would produce odd CSS: bad names,
// unknown modes, seeds that are not hex colors and shade values that are
// neither hex colors nor parsable CSS colors.
func Validate(o Override) error {
	var errs []error

	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%s: failed %q check (value %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
	}

	errs = append(errs, validateFamilies("primaryColors", o.PrimaryColors)...)
	errs = append(errs, validateFamilies("colors", o.Colors)...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("theme %q: %w", o.Name, errors.Join(errs...))
}

func validateFamilies(field string, families *Families) []error {
	var errs []error
	for name, value := range families.All() {
		if err := validate.Var(name, "family"); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid family name %q", field, name))
		}
		switch v := value.(type) {
		case Seed:
			if err := validate.Var(string(v), "hexcolor"); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: seed %q is not a hex color", field, name, v))
			}
		case SubPalette:
			for label, shade := range v.Shades.All() {
				if err := validate.Var(label, "label"); err != nil {
					errs = append(errs, fmt.Errorf("%s.%s: invalid shade label %q", field, name, label))
				}
				if _, ok := colorparse.Parse(shade); !ok {
					errs = append(errs, fmt.Errorf("%s.%s.%s: %q is not a color and is emitted as-is", field, name, label, shade))
				}
			}
		case Unsupported:
			errs = append(errs, fmt.Errorf("%s.%s: %v is neither a seed nor a shade mapping; the family is emitted empty", field, name, v.Value))
		}
	}
	return errs
}
