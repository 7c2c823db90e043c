package layout

// registry holds one complete record per profile. It is never mutated after
// package initialization; Lookup hands out copies.
var registry = map[Profile]Configuration{
	Minimal: {
		Name:        "Minimal",
		Description: "Clean, typography-focused with maximum whitespace",
		Hero:        HeroMinimal,
		Services:    ServicesGrid,
		FAQ:         FAQSimple,
		Pricing:     PricingSimple,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "700ms",
		AnimationEasing:   "ease-out",
		StaggerDelay:      "120ms",
		EntryAnimation:    EntryFadeIn,

		HeaderVariant: "minimal",
		CardStyle:     "flat",
		ButtonStyle:   "sharp",
		FormStyle:     "minimal",
		FooterVariant: "minimal",

		CardInteraction:   "transition-colors",
		ButtonInteraction: "transition-colors",
		LinkInteraction:   "link-underline-center",
		ImageInteraction:  "img-brightness",

		SectionTransition: "none",
		SectionSpacing:    "large",

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Classic: {
		Name:        "Classic",
		Description: "Traditional, centered design with familiar patterns",
		Hero:        HeroCentered,
		Services:    ServicesGrid,
		FAQ:         FAQAccordion,
		Pricing:     PricingCards,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "600ms",
		AnimationEasing:   "ease-out",
		StaggerDelay:      "100ms",
		EntryAnimation:    EntryFadeIn,

		HeaderVariant: "default",
		CardStyle:     "default",
		ButtonStyle:   "rounded",
		FormStyle:     "default",
		FooterVariant: "default",

		CardInteraction:   "card-lift-subtle",
		ButtonInteraction: "transition-colors",
		LinkInteraction:   "link-underline-center",
		ImageInteraction:  "img-zoom-subtle",

		SectionTransition: "fade",
		SectionSpacing:    "normal",

		Features: Features{
			HeroImage:    true,
			QuoteIcons:   true,
			ContactIcons: true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Split: {
		Name:        "Split",
		Description: "Asymmetric 50/50 layout with corporate balance",
		Hero:        HeroSplit,
		Services:    ServicesAlternating,
		FAQ:         FAQAccordion,
		Pricing:     PricingTable,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "550ms",
		AnimationEasing:   "cubic-bezier(0.16, 1, 0.3, 1)",
		StaggerDelay:      "80ms",
		EntryAnimation:    EntrySlideUp,

		HeaderVariant: "default",
		CardStyle:     "bordered",
		ButtonStyle:   "rounded",
		FormStyle:     "card",
		FooterVariant: "default",

		CardInteraction:   "card-lift",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom",

		SectionTransition: "none",
		SectionSpacing:    "large",

		Features: Features{
			HeroImage:       true,
			QuoteIcons:      true,
			ContactIcons:    true,
			DecorativeLines: true,
			LargeImages:     true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Bold: {
		Name:        "Bold",
		Description: "High-impact with color blocking and dynamic effects",
		Hero:        HeroFullBleed,
		Services:    ServicesLarge,
		FAQ:         FAQAccordion,
		Pricing:     PricingCards,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "400ms",
		AnimationEasing:   "cubic-bezier(0.34, 1.56, 0.64, 1)",
		StaggerDelay:      "50ms",
		EntryAnimation:    EntryScaleInBounce,

		HeaderVariant: "transparent",
		CardStyle:     "bordered",
		ButtonStyle:   "pill",
		FormStyle:     "glass",
		FooterVariant: "dark",

		CardInteraction:   "card-lift card-glow",
		ButtonInteraction: "btn-scale btn-shine",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom",

		SectionTransition: "angled",
		SectionSpacing:    "normal",

		Features: Features{
			HeroImage:       true,
			DecorativeOrbs:  true,
			ScrollIndicator: true,
			GradientText:    true,
			QuoteIcons:      true,
			ContactIcons:    true,
			AnimatedStats:   true,
			DecorativeLines: true,
			ColorBlocking:   true,
			LargeImages:     true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Glass: {
		Name:        "Glass",
		Description: "Premium glassmorphism with blur effects everywhere",
		Hero:        HeroCentered,
		Services:    ServicesGrid,
		FAQ:         FAQGrid,
		Pricing:     PricingCards,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "500ms",
		AnimationEasing:   "cubic-bezier(0.16, 1, 0.3, 1)",
		StaggerDelay:      "75ms",
		EntryAnimation:    EntrySlideUp,

		HeaderVariant: "glass",
		CardStyle:     "glass",
		ButtonStyle:   "rounded",
		FormStyle:     "glass",
		FooterVariant: "default",

		CardInteraction:   "card-lift",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline-center",
		ImageInteraction:  "img-zoom-subtle",

		SectionTransition: "wave",
		SectionSpacing:    "normal",

		Features: Features{
			HeroImage:       true,
			DecorativeOrbs:  true,
			GradientText:    true,
			QuoteIcons:      true,
			ContactIcons:    true,
			DecorativeLines: true,
			GlassEffects:    true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Magazine: {
		Name:        "Magazine",
		Description: "Editorial layout with image-first visual storytelling",
		Hero:        HeroFullBleed,
		Services:    ServicesHorizontal,
		FAQ:         FAQGrid,
		Pricing:     PricingSimple,
		Gallery:     GalleryMasonry,
		Team:        TeamFeatured,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "600ms",
		AnimationEasing:   "cubic-bezier(0.22, 1, 0.36, 1)",
		StaggerDelay:      "100ms",
		EntryAnimation:    EntryFadeIn,

		HeaderVariant: "transparent",
		CardStyle:     "default",
		ButtonStyle:   "default",
		FormStyle:     "card",
		FooterVariant: "dark",

		CardInteraction:   "card-lift-subtle",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom",

		SectionTransition: "fade",
		SectionSpacing:    "large",

		Features: Features{
			HeroImage:       true,
			ScrollIndicator: true,
			ContactIcons:    true,
			LargeImages:     true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Brutalist: {
		Name:        "Brutalist",
		Description: "Raw typography, thick borders, zero radius - art gallery aesthetic",
		Hero:        HeroBrutalist,
		Services:    ServicesGrid,
		FAQ:         FAQSimple,
		Pricing:     PricingTable,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "200ms",
		AnimationEasing:   "linear",
		StaggerDelay:      "0ms",
		EntryAnimation:    EntryNone,

		HeaderVariant: "sidebar",
		CardStyle:     "brutal",
		ButtonStyle:   "brutal",
		FormStyle:     "brutal",
		FooterVariant: "sidebar",

		CardInteraction:   "transition-colors",
		ButtonInteraction: "transition-colors",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-brightness",

		SectionTransition: "none",
		SectionSpacing:    "compact",

		Features: Features{
			ColorBlocking: true,
		},

		Navigation:    NavSidebar,
		Wrapper:       WrapperSidebar,
		ContentFlow:   FlowVertical,
		GridSystem:    GridBroken,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionLeft,
	},
	Sidebar: {
		Name:        "Sidebar",
		Description: "Fixed sidebar navigation with independent scroll area",
		Hero:        HeroMinimal,
		Services:    ServicesGrid,
		FAQ:         FAQAccordion,
		Pricing:     PricingCards,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "400ms",
		AnimationEasing:   "cubic-bezier(0.16, 1, 0.3, 1)",
		StaggerDelay:      "60ms",
		EntryAnimation:    EntrySlideLeft,

		HeaderVariant: "sidebar",
		CardStyle:     "bordered",
		ButtonStyle:   "rounded",
		FormStyle:     "card",
		FooterVariant: "sidebar",

		CardInteraction:   "card-lift-subtle",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom-subtle",

		SectionTransition: "fade",
		SectionSpacing:    "normal",

		Features: Features{
			ContactIcons: true,
		},

		Navigation:    NavSidebar,
		Wrapper:       WrapperSidebar,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionLeft,
	},
	Fullscreen: {
		Name:        "Fullscreen",
		Description: "Full viewport sections with snap scrolling - luxury experience",
		Hero:        HeroFullscreen,
		Services:    ServicesFullscreen,
		FAQ:         FAQAccordion,
		Pricing:     PricingCards,
		Gallery:     GalleryCarousel,
		Team:        TeamCarousel,
		Comparison:  BeforeAfterSlider,

		AnimationDuration: "800ms",
		AnimationEasing:   "cubic-bezier(0.22, 1, 0.36, 1)",
		StaggerDelay:      "150ms",
		EntryAnimation:    EntryFadeIn,

		HeaderVariant: "overlay",
		CardStyle:     "glass",
		ButtonStyle:   "pill",
		FormStyle:     "glass",
		FooterVariant: "minimal",

		CardInteraction:   "card-lift",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline-center",
		ImageInteraction:  "img-zoom",

		SectionTransition: "snap",
		SectionSpacing:    "none",

		Features: Features{
			HeroImage:       true,
			DecorativeOrbs:  true,
			ScrollIndicator: true,
			GradientText:    true,
			ContactIcons:    true,
			AnimatedStats:   true,
			GlassEffects:    true,
			LargeImages:     true,
		},

		Navigation:    NavOverlay,
		Wrapper:       WrapperFullscreen,
		ContentFlow:   FlowSnap,
		GridSystem:    GridFullWidth,
		SectionHeight: HeightViewport,
		NavPosition:   NavPositionOverlay,
	},
	Horizontal: {
		Name:        "Horizontal",
		Description: "Horizontal scrolling experience - gallery/portfolio style",
		Hero:        HeroHorizontal,
		Services:    ServicesHorizontal,
		FAQ:         FAQSimple,
		Pricing:     PricingSimple,
		Gallery:     GalleryCarousel,
		Team:        TeamCarousel,
		Comparison:  BeforeAfterSlider,

		AnimationDuration: "500ms",
		AnimationEasing:   "cubic-bezier(0.16, 1, 0.3, 1)",
		StaggerDelay:      "100ms",
		EntryAnimation:    EntrySlideLeft,

		HeaderVariant: "minimal",
		CardStyle:     "default",
		ButtonStyle:   "rounded",
		FormStyle:     "minimal",
		FooterVariant: "minimal",

		CardInteraction:   "card-lift-subtle",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom",

		SectionTransition: "none",
		SectionSpacing:    "none",

		Features: Features{
			HeroImage:       true,
			ScrollIndicator: true,
			LargeImages:     true,
		},

		Navigation:    NavMinimal,
		Wrapper:       WrapperHorizontal,
		ContentFlow:   FlowHorizontal,
		GridSystem:    GridFullWidth,
		SectionHeight: HeightViewport,
		NavPosition:   NavPositionTop,
	},
	Bento: {
		Name:        "Bento",
		Description: "Multi-panel grid hero with varied sizes - tech/startup style",
		Hero:        HeroBento,
		Services:    ServicesBento,
		FAQ:         FAQGrid,
		Pricing:     PricingCards,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "450ms",
		AnimationEasing:   "cubic-bezier(0.34, 1.56, 0.64, 1)",
		StaggerDelay:      "75ms",
		EntryAnimation:    EntryScaleInBounce,

		HeaderVariant: "glass",
		CardStyle:     "glass",
		ButtonStyle:   "rounded",
		FormStyle:     "glass",
		FooterVariant: "default",

		CardInteraction:   "card-lift card-glow",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline-center",
		ImageInteraction:  "img-zoom-subtle",

		SectionTransition: "fade",
		SectionSpacing:    "normal",

		Features: Features{
			HeroImage:      true,
			DecorativeOrbs: true,
			GradientText:   true,
			ContactIcons:   true,
			AnimatedStats:  true,
			GlassEffects:   true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridBento,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
	Storytelling: {
		Name:        "Storytelling",
		Description: "Chapter dots navigation with story progression - nonprofit/founder style",
		Hero:        HeroChapter,
		Services:    ServicesTimeline,
		FAQ:         FAQAccordion,
		Pricing:     PricingSimple,
		Gallery:     GalleryMasonry,
		Team:        TeamFeatured,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "700ms",
		AnimationEasing:   "cubic-bezier(0.22, 1, 0.36, 1)",
		StaggerDelay:      "200ms",
		EntryAnimation:    EntryFadeIn,

		HeaderVariant: "transparent",
		CardStyle:     "default",
		ButtonStyle:   "default",
		FormStyle:     "default",
		FooterVariant: "default",

		CardInteraction:   "card-lift-subtle",
		ButtonInteraction: "transition-colors",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom",

		SectionTransition: "fade",
		SectionSpacing:    "large",

		Features: Features{
			HeroImage:       true,
			QuoteIcons:      true,
			ContactIcons:    true,
			DecorativeLines: true,
			LargeImages:     true,
		},

		Navigation:    NavChapter,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowVertical,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionRight,
	},
	BottomNav: {
		Name:        "Bottom Nav",
		Description: "Fixed bottom bar with card stacking - youth/app style",
		Hero:        HeroCentered,
		Services:    ServicesCards,
		FAQ:         FAQSimple,
		Pricing:     PricingCards,
		Gallery:     GalleryGrid,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "350ms",
		AnimationEasing:   "cubic-bezier(0.34, 1.56, 0.64, 1)",
		StaggerDelay:      "50ms",
		EntryAnimation:    EntryScaleInBounce,

		HeaderVariant: "bottom",
		CardStyle:     "default",
		ButtonStyle:   "pill",
		FormStyle:     "card",
		FooterVariant: "minimal",

		CardInteraction:   "card-lift",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline-center",
		ImageInteraction:  "img-zoom-subtle",

		SectionTransition: "none",
		SectionSpacing:    "compact",

		Features: Features{
			HeroImage:      true,
			DecorativeOrbs: true,
			GradientText:   true,
			ContactIcons:   true,
			AnimatedStats:  true,
			ColorBlocking:  true,
		},

		Navigation:    NavBottom,
		Wrapper:       WrapperDefault,
		ContentFlow:   FlowCards,
		GridSystem:    GridTraditional,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionBottom,
	},
	Masonry: {
		Name:        "Masonry",
		Description: "Continuous masonry flow with sticky filters - photography/fashion style",
		Hero:        HeroMinimal,
		Services:    ServicesMasonry,
		FAQ:         FAQGrid,
		Pricing:     PricingSimple,
		Gallery:     GalleryMasonry,
		Team:        TeamShowcase,
		Comparison:  BeforeAfterGallery,

		AnimationDuration: "400ms",
		AnimationEasing:   "ease-out",
		StaggerDelay:      "50ms",
		EntryAnimation:    EntryFadeIn,

		HeaderVariant: "default",
		CardStyle:     "default",
		ButtonStyle:   "rounded",
		FormStyle:     "minimal",
		FooterVariant: "minimal",

		CardInteraction:   "card-lift-subtle",
		ButtonInteraction: "btn-scale",
		LinkInteraction:   "link-underline",
		ImageInteraction:  "img-zoom",

		SectionTransition: "none",
		SectionSpacing:    "compact",

		Features: Features{
			ContactIcons: true,
			LargeImages:  true,
		},

		Navigation:    NavTop,
		Wrapper:       WrapperMasonry,
		ContentFlow:   FlowContinuous,
		GridSystem:    GridMasonry,
		SectionHeight: HeightAuto,
		NavPosition:   NavPositionTop,
	},
}
