package layout

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/petspa/salonsite/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssTimePattern = regexp.MustCompile(`^\d+(\.\d+)?(ms|s)$`)
)

// Validator returns the shared validator with the layout tags registered:
// css_time plus one membership tag per variant family (hero, services, faq,
// pricing, gallery, team, comparison, navigation). Other packages reuse it
// so their structs can reference layout variants in tags.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_time", func(fl validator.FieldLevel) bool {
			return cssTimePattern.MatchString(fl.Field().String())
		})
		register(v, "hero", HeroVariants)
		register(v, "services", ServicesVariants)
		register(v, "faq", FAQVariants)
		register(v, "pricing", PricingVariants)
		register(v, "gallery", GalleryVariants)
		register(v, "team", TeamVariants)
		register(v, "comparison", ComparisonVariants)
		register(v, "navigation", NavigationVariants)

		validateInst = v
	})
	return validateInst
}

func register[V ~string](v *validator.Validate, tag string, family []V) {
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(family, V(fl.Field().String()))
	})
}

// ValidateConfiguration checks a single record against its struct tags.
func ValidateConfiguration(cfg Configuration) error {
	if err := Validator().Struct(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "configuration %q: %s", cfg.Name, describe(err))
	}
	return nil
}

// Validate checks that the registry is total: every declared profile has a
// record and every record passes ValidateConfiguration. It reports every
// problem found, not just the first.
func Validate() error {
	var errs []error
	for _, p := range profiles {
		cfg, ok := registry[p]
		if !ok {
			errs = append(errs, errors.New(errors.ErrCodeConfigurationNotFound, "layout profile %q has no configuration", p))
			continue
		}
		if err := ValidateConfiguration(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	if len(registry) != len(profiles) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidConfig, "registry has %d records for %d profiles", len(registry), len(profiles)))
	}
	return errors.Join(errs...)
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q (got %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return strings.Join(parts, "; ")
}
