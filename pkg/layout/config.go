package layout

// Configuration is the complete presentation record for one profile.
// Every field is mandatory; consumers read them without nil or empty checks.
type Configuration struct {
	Name        string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Description string `json:"description" yaml:"description" toml:"description" validate:"required"`

	// Section variants
	Hero       HeroVariant       `json:"hero_component" yaml:"hero_component" toml:"hero_component" validate:"required,hero"`
	Services   ServicesVariant   `json:"services_component" yaml:"services_component" toml:"services_component" validate:"required,services"`
	FAQ        FAQVariant        `json:"faq_component" yaml:"faq_component" toml:"faq_component" validate:"required,faq"`
	Pricing    PricingVariant    `json:"pricing_component" yaml:"pricing_component" toml:"pricing_component" validate:"required,pricing"`
	Gallery    GalleryVariant    `json:"gallery_component" yaml:"gallery_component" toml:"gallery_component" validate:"required,gallery"`
	Team       TeamVariant       `json:"team_component" yaml:"team_component" toml:"team_component" validate:"required,team"`
	Comparison ComparisonVariant `json:"comparison_component" yaml:"comparison_component" toml:"comparison_component" validate:"required,comparison"`

	// Animation
	AnimationDuration string         `json:"animation_duration" yaml:"animation_duration" toml:"animation_duration" validate:"required,css_time"`
	AnimationEasing   string         `json:"animation_easing" yaml:"animation_easing" toml:"animation_easing" validate:"required"`
	StaggerDelay      string         `json:"stagger_delay" yaml:"stagger_delay" toml:"stagger_delay" validate:"required,css_time"`
	EntryAnimation    EntryAnimation `json:"entry_animation" yaml:"entry_animation" toml:"entry_animation" validate:"required,oneof=fade-in slide-up scale-in-bounce slide-left none"`

	// Style variants
	HeaderVariant string `json:"header_variant" yaml:"header_variant" toml:"header_variant" validate:"required,oneof=default glass transparent minimal sidebar bottom overlay"`
	CardStyle     string `json:"card_style" yaml:"card_style" toml:"card_style" validate:"required,oneof=flat default bordered glass brutal"`
	ButtonStyle   string `json:"button_style" yaml:"button_style" toml:"button_style" validate:"required,oneof=default rounded sharp pill brutal"`
	FormStyle     string `json:"form_style" yaml:"form_style" toml:"form_style" validate:"required,oneof=default card glass minimal brutal"`
	FooterVariant string `json:"footer_variant" yaml:"footer_variant" toml:"footer_variant" validate:"required,oneof=default dark branded minimal sidebar"`

	// Interaction utility classes
	CardInteraction   string `json:"card_interaction" yaml:"card_interaction" toml:"card_interaction" validate:"required"`
	ButtonInteraction string `json:"button_interaction" yaml:"button_interaction" toml:"button_interaction" validate:"required"`
	LinkInteraction   string `json:"link_interaction" yaml:"link_interaction" toml:"link_interaction" validate:"required"`
	ImageInteraction  string `json:"image_interaction" yaml:"image_interaction" toml:"image_interaction" validate:"required"`

	// Sections
	SectionTransition string `json:"section_transition" yaml:"section_transition" toml:"section_transition" validate:"required,oneof=none fade wave angled snap"`
	SectionSpacing    string `json:"section_spacing" yaml:"section_spacing" toml:"section_spacing" validate:"required,oneof=normal large compact none"`

	Features Features `json:"features" yaml:"features" toml:"features"`

	// Structure
	Navigation    NavigationVariant `json:"navigation_component" yaml:"navigation_component" toml:"navigation_component" validate:"required,navigation"`
	Wrapper       Wrapper           `json:"layout_wrapper" yaml:"layout_wrapper" toml:"layout_wrapper" validate:"required,oneof=default sidebar fullscreen horizontal masonry"`
	ContentFlow   ContentFlow       `json:"content_flow" yaml:"content_flow" toml:"content_flow" validate:"required,oneof=vertical horizontal snap cards continuous"`
	GridSystem    GridSystem        `json:"grid_system" yaml:"grid_system" toml:"grid_system" validate:"required,oneof=traditional bento broken masonry fullwidth"`
	SectionHeight SectionHeight     `json:"section_height" yaml:"section_height" toml:"section_height" validate:"required,oneof=auto viewport compact"`
	NavPosition   NavPosition       `json:"nav_position" yaml:"nav_position" toml:"nav_position" validate:"required,oneof=top left bottom overlay right"`
}

// Features holds the decorative toggles. Booleans have no "missing" state,
// so they need no validation.
type Features struct {
	HeroImage       bool `json:"show_hero_image" yaml:"show_hero_image" toml:"show_hero_image"`
	DecorativeOrbs  bool `json:"show_decorative_orbs" yaml:"show_decorative_orbs" toml:"show_decorative_orbs"`
	ScrollIndicator bool `json:"show_scroll_indicator" yaml:"show_scroll_indicator" toml:"show_scroll_indicator"`
	GradientText    bool `json:"show_gradient_text" yaml:"show_gradient_text" toml:"show_gradient_text"`
	QuoteIcons      bool `json:"show_quote_icons" yaml:"show_quote_icons" toml:"show_quote_icons"`
	ContactIcons    bool `json:"show_contact_icons" yaml:"show_contact_icons" toml:"show_contact_icons"`
	AnimatedStats   bool `json:"show_animated_stats" yaml:"show_animated_stats" toml:"show_animated_stats"`
	DecorativeLines bool `json:"show_decorative_lines" yaml:"show_decorative_lines" toml:"show_decorative_lines"`
	GlassEffects    bool `json:"show_glass_effects" yaml:"show_glass_effects" toml:"show_glass_effects"`
	ColorBlocking   bool `json:"show_color_blocking" yaml:"show_color_blocking" toml:"show_color_blocking"`
	LargeImages     bool `json:"show_large_images" yaml:"show_large_images" toml:"show_large_images"`
}
