package resolver

import (
	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
)

// CheckConsistency returns one UNKNOWN_VARIANT error for every variant that
// a registered profile declares but r cannot resolve. A nil result means
// no profile would fall back.
func CheckConsistency(r *Resolver) []error {
	var errs []error
	check := func(p layout.Profile, family string, name string, has func(string) bool) {
		switch {
		case !has(name):
			errs = append(errs, errors.New(errors.ErrCodeUnknownVariant,
				"profile %s declares %s variant %q with no unit", p, family, name))
		case !components.Exists(family, name):
			errs = append(errs, errors.New(errors.ErrCodeUnknownVariant,
				"profile %s: %s variant %q has no template", p, family, name))
		}
	}
	for _, e := range layout.All() {
		c := e.Config
		check(e.Profile, "hero", string(c.Hero), r.HasHero)
		check(e.Profile, "services", string(c.Services), r.HasServices)
		check(e.Profile, "gallery", string(c.Gallery), r.HasGallery)
		check(e.Profile, "team", string(c.Team), r.HasTeam)
		check(e.Profile, "comparison", string(c.Comparison), r.HasComparison)
		check(e.Profile, "navigation", string(c.Navigation), r.HasNavigation)
		check(e.Profile, "faq", string(c.FAQ), r.HasFAQ)
		check(e.Profile, "pricing", string(c.Pricing), r.HasPricing)
	}
	return errs
}

// Consistent joins the result of CheckConsistency into a single error.
func Consistent(r *Resolver) error {
	return errors.Join(CheckConsistency(r)...)
}
