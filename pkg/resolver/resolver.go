package resolver

import (
	"iter"
	"sync"

	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/layout"
)

// Resolver holds one family per section kind.
type Resolver struct {
	Hero       *Family[layout.HeroVariant]
	Services   *Family[layout.ServicesVariant]
	Gallery    *Family[layout.GalleryVariant]
	Team       *Family[layout.TeamVariant]
	Comparison *Family[layout.ComparisonVariant]
	Navigation *Family[layout.NavigationVariant]
	FAQ        *Family[layout.FAQVariant]
	Pricing    *Family[layout.PricingVariant]
}

// New returns a resolver with fresh units for every known variant.
func New() *Resolver {
	return &Resolver{
		Hero:       NewFamily("hero", layout.HeroCentered, layout.HeroVariants...),
		Services:   NewFamily("services", layout.ServicesGrid, layout.ServicesVariants...),
		Gallery:    NewFamily("gallery", layout.GalleryGrid, layout.GalleryVariants...),
		Team:       NewFamily("team", layout.TeamShowcase, layout.TeamVariants...),
		Comparison: NewFamily("comparison", layout.BeforeAfterGallery, layout.ComparisonVariants...),
		Navigation: NewFamily("navigation", layout.NavTop, layout.NavigationVariants...),
		FAQ:        NewFamily("faq", layout.FAQAccordion, layout.FAQVariants...),
		Pricing:    NewFamily("pricing", layout.PricingCards, layout.PricingVariants...),
	}
}

// Default returns the process-wide resolver. Its units are shared, so each
// template is parsed at most once per process.
var Default = sync.OnceValue(New)

func (r *Resolver) ResolveHero(v layout.HeroVariant) *components.Unit { return r.Hero.Resolve(v) }
func (r *Resolver) HasHero(name string) bool                         { return r.Hero.Has(name) }
func (r *Resolver) AvailableHeroes() iter.Seq[layout.HeroVariant]    { return r.Hero.Available() }

func (r *Resolver) ResolveServices(v layout.ServicesVariant) *components.Unit {
	return r.Services.Resolve(v)
}
func (r *Resolver) HasServices(name string) bool { return r.Services.Has(name) }
func (r *Resolver) AvailableServices() iter.Seq[layout.ServicesVariant] {
	return r.Services.Available()
}

func (r *Resolver) ResolveGallery(v layout.GalleryVariant) *components.Unit {
	return r.Gallery.Resolve(v)
}
func (r *Resolver) HasGallery(name string) bool                          { return r.Gallery.Has(name) }
func (r *Resolver) AvailableGalleries() iter.Seq[layout.GalleryVariant] { return r.Gallery.Available() }

func (r *Resolver) ResolveTeam(v layout.TeamVariant) *components.Unit { return r.Team.Resolve(v) }
func (r *Resolver) HasTeam(name string) bool                         { return r.Team.Has(name) }
func (r *Resolver) AvailableTeams() iter.Seq[layout.TeamVariant]     { return r.Team.Available() }

func (r *Resolver) ResolveComparison(v layout.ComparisonVariant) *components.Unit {
	return r.Comparison.Resolve(v)
}
func (r *Resolver) HasComparison(name string) bool { return r.Comparison.Has(name) }
func (r *Resolver) AvailableComparisons() iter.Seq[layout.ComparisonVariant] {
	return r.Comparison.Available()
}

func (r *Resolver) ResolveNavigation(v layout.NavigationVariant) *components.Unit {
	return r.Navigation.Resolve(v)
}
func (r *Resolver) HasNavigation(name string) bool { return r.Navigation.Has(name) }
func (r *Resolver) AvailableNavigations() iter.Seq[layout.NavigationVariant] {
	return r.Navigation.Available()
}

func (r *Resolver) ResolveFAQ(v layout.FAQVariant) *components.Unit { return r.FAQ.Resolve(v) }
func (r *Resolver) HasFAQ(name string) bool                        { return r.FAQ.Has(name) }
func (r *Resolver) AvailableFAQs() iter.Seq[layout.FAQVariant]     { return r.FAQ.Available() }

func (r *Resolver) ResolvePricing(v layout.PricingVariant) *components.Unit {
	return r.Pricing.Resolve(v)
}
func (r *Resolver) HasPricing(name string) bool                           { return r.Pricing.Has(name) }
func (r *Resolver) AvailablePricings() iter.Seq[layout.PricingVariant] { return r.Pricing.Available() }
