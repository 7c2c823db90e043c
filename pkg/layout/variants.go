package layout

// Section variant tags. Each family is a closed set; the resolver maps a tag
// to a renderable unit and falls back to the family default for anything it
// does not know.

// HeroVariant selects the hero section.
type HeroVariant string

const (
	HeroMinimal    HeroVariant = "HeroMinimal"
	HeroCentered   HeroVariant = "HeroCentered"
	HeroSplit      HeroVariant = "HeroSplit"
	HeroFullBleed  HeroVariant = "HeroFullBleed"
	HeroBrutalist  HeroVariant = "HeroBrutalist"
	HeroBento      HeroVariant = "HeroBento"
	HeroFullscreen HeroVariant = "HeroFullscreen"
	HeroHorizontal HeroVariant = "HeroHorizontal"
	HeroChapter    HeroVariant = "HeroChapter"
)

// HeroVariants lists every hero tag.
var HeroVariants = []HeroVariant{
	HeroMinimal, HeroCentered, HeroSplit, HeroFullBleed,
	HeroBrutalist, HeroBento, HeroFullscreen, HeroHorizontal, HeroChapter,
}

// ServicesVariant selects the services section.
type ServicesVariant string

const (
	ServicesGrid        ServicesVariant = "ServicesGrid"
	ServicesAlternating ServicesVariant = "ServicesAlternating"
	ServicesLarge       ServicesVariant = "ServicesLarge"
	ServicesHorizontal  ServicesVariant = "ServicesHorizontal"
	ServicesBento       ServicesVariant = "ServicesBento"
	ServicesCards       ServicesVariant = "ServicesCards"
	ServicesMasonry     ServicesVariant = "ServicesMasonry"
	ServicesFullscreen  ServicesVariant = "ServicesFullscreen"
	ServicesTimeline    ServicesVariant = "ServicesTimeline"
)

// ServicesVariants lists every services tag.
var ServicesVariants = []ServicesVariant{
	ServicesGrid, ServicesAlternating, ServicesLarge, ServicesHorizontal,
	ServicesBento, ServicesCards, ServicesMasonry, ServicesFullscreen, ServicesTimeline,
}

// FAQVariant selects the FAQ section.
type FAQVariant string

const (
	FAQAccordion FAQVariant = "FAQAccordion"
	FAQGrid      FAQVariant = "FAQGrid"
	FAQSimple    FAQVariant = "FAQSimple"
)

// FAQVariants lists every FAQ tag.
var FAQVariants = []FAQVariant{FAQAccordion, FAQGrid, FAQSimple}

// PricingVariant selects the pricing section.
type PricingVariant string

const (
	PricingCards  PricingVariant = "PricingCards"
	PricingTable  PricingVariant = "PricingTable"
	PricingSimple PricingVariant = "PricingSimple"
)

// PricingVariants lists every pricing tag.
var PricingVariants = []PricingVariant{PricingCards, PricingTable, PricingSimple}

// GalleryVariant selects the gallery section.
type GalleryVariant string

const (
	GalleryGrid     GalleryVariant = "GalleryGrid"
	GalleryMasonry  GalleryVariant = "GalleryMasonry"
	GalleryCarousel GalleryVariant = "GalleryCarousel"
)

// GalleryVariants lists every gallery tag.
var GalleryVariants = []GalleryVariant{GalleryGrid, GalleryMasonry, GalleryCarousel}

// ComparisonVariant selects the before/after section.
type ComparisonVariant string

const (
	BeforeAfterSlider  ComparisonVariant = "BeforeAfterSlider"
	BeforeAfterGallery ComparisonVariant = "BeforeAfterGallery"
)

// ComparisonVariants lists every comparison tag.
var ComparisonVariants = []ComparisonVariant{BeforeAfterSlider, BeforeAfterGallery}

// TeamVariant selects the team section.
type TeamVariant string

const (
	TeamShowcase TeamVariant = "TeamShowcase"
	TeamCarousel TeamVariant = "TeamCarousel"
	TeamFeatured TeamVariant = "TeamFeatured"
)

// TeamVariants lists every team tag.
var TeamVariants = []TeamVariant{TeamShowcase, TeamCarousel, TeamFeatured}

// NavigationVariant selects the navigation component.
type NavigationVariant string

const (
	NavTop     NavigationVariant = "NavTop"
	NavSidebar NavigationVariant = "NavSidebar"
	NavBottom  NavigationVariant = "NavBottom"
	NavOverlay NavigationVariant = "NavOverlay"
	NavChapter NavigationVariant = "NavChapter"
	NavMinimal NavigationVariant = "NavMinimal"
)

// NavigationVariants lists every navigation tag.
var NavigationVariants = []NavigationVariant{NavTop, NavSidebar, NavBottom, NavOverlay, NavChapter, NavMinimal}

// Style and structure tags. These are plain strings consumed by templates
// and CSS; the allowed values are enforced by the validate tags on
// Configuration.

// EntryAnimation is the animation applied when a section scrolls into view.
type EntryAnimation string

const (
	EntryFadeIn        EntryAnimation = "fade-in"
	EntrySlideUp       EntryAnimation = "slide-up"
	EntryScaleInBounce EntryAnimation = "scale-in-bounce"
	EntrySlideLeft     EntryAnimation = "slide-left"
	EntryNone          EntryAnimation = "none"
)

// Wrapper is the page-level structural container.
type Wrapper string

const (
	WrapperDefault    Wrapper = "default"
	WrapperSidebar    Wrapper = "sidebar"
	WrapperFullscreen Wrapper = "fullscreen"
	WrapperHorizontal Wrapper = "horizontal"
	WrapperMasonry    Wrapper = "masonry"
)

// ContentFlow describes how sections follow each other.
type ContentFlow string

const (
	FlowVertical   ContentFlow = "vertical"
	FlowHorizontal ContentFlow = "horizontal"
	FlowSnap       ContentFlow = "snap"
	FlowCards      ContentFlow = "cards"
	FlowContinuous ContentFlow = "continuous"
)

// GridSystem names the grid used inside sections.
type GridSystem string

const (
	GridTraditional GridSystem = "traditional"
	GridBento       GridSystem = "bento"
	GridBroken      GridSystem = "broken"
	GridMasonry     GridSystem = "masonry"
	GridFullWidth   GridSystem = "fullwidth"
)

// SectionHeight controls section sizing.
type SectionHeight string

const (
	HeightAuto     SectionHeight = "auto"
	HeightViewport SectionHeight = "viewport"
	HeightCompact  SectionHeight = "compact"
)

// NavPosition is where the navigation sits.
type NavPosition string

const (
	NavPositionTop     NavPosition = "top"
	NavPositionLeft    NavPosition = "left"
	NavPositionBottom  NavPosition = "bottom"
	NavPositionOverlay NavPosition = "overlay"
	NavPositionRight   NavPosition = "right"
)
