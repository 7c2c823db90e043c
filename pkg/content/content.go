// Package content holds the salon's page content: the copy, images and
// contact details every section renders.
//
// Content is decoded from TOML. A default document is embedded in the
// binary; operators can point the server at an override file, which is
// validated and sanitized on load and can be hot-reloaded with a [Watcher].
//
// Rich-text fields ([RichText]) accept a small inline HTML subset and are
// cleaned with bluemonday before they are exposed to templates. All other
// strings are plain text and escaped by html/template.
package content

import "html/template"

// Site is the whole content payload shared by every section.
type Site struct {
	Meta            Meta         `toml:"meta" json:"meta"`
	Business        Business     `toml:"business" json:"business"`
	Navigation      Navigation   `toml:"navigation" json:"navigation"`
	Hero            Hero         `toml:"hero" json:"hero"`
	Services        Services     `toml:"services" json:"services"`
	About           About        `toml:"about" json:"about"`
	Gallery         Gallery      `toml:"gallery" json:"gallery"`
	Transformations Comparison   `toml:"transformations" json:"transformations"`
	Team            Team         `toml:"team" json:"team"`
	Testimonials    Testimonials `toml:"testimonials" json:"testimonials"`
	FAQ             FAQ          `toml:"faq" json:"faq"`
	Pricing         Pricing      `toml:"pricing" json:"pricing"`
	Contact         Contact      `toml:"contact" json:"contact"`
	Footer          Footer       `toml:"footer" json:"footer"`
	StickyCTA       StickyCTA    `toml:"sticky_cta" json:"sticky_cta"`
}

// RichText is a string that may contain sanitized inline HTML.
type RichText string

// HTML returns the text for direct inclusion in a template. Only call it on
// values that went through Load or Decode, which sanitize every RichText.
func (r RichText) HTML() template.HTML { return template.HTML(r) }

// Link is a labelled anchor.
type Link struct {
	Label string `toml:"label" json:"label"`
	Href  string `toml:"href" json:"href"`
}

// Stat is a headline number with a caption.
type Stat struct {
	Value string `toml:"value" json:"value" validate:"required"`
	Label string `toml:"label" json:"label" validate:"required"`
}

type Meta struct {
	Title       string   `toml:"title" json:"title" validate:"required"`
	Description string   `toml:"description" json:"description" validate:"required"`
	Keywords    []string `toml:"keywords" json:"keywords"`
	Lang        string   `toml:"lang" json:"lang" validate:"required"`
	Locale      string   `toml:"locale" json:"locale"`
}

// Business feeds the structured data and contact blocks.
type Business struct {
	Name        string   `toml:"name" json:"name" validate:"required"`
	Description string   `toml:"description" json:"description"`
	URL         string   `toml:"url" json:"url" validate:"required,url"`
	Telephone   string   `toml:"telephone" json:"telephone"`
	Email       string   `toml:"email" json:"email" validate:"omitempty,email"`
	PriceRange  string   `toml:"price_range" json:"price_range"`
	Social      []string `toml:"social" json:"social" validate:"dive,url"`
	Address     Address  `toml:"address" json:"address"`
}

type Address struct {
	Street     string `toml:"street" json:"street"`
	Locality   string `toml:"locality" json:"locality"`
	Region     string `toml:"region" json:"region"`
	PostalCode string `toml:"postal_code" json:"postal_code"`
	Country    string `toml:"country" json:"country" validate:"omitempty,iso3166_1_alpha2"`
}

type Navigation struct {
	Logo  Link   `toml:"logo" json:"logo"`
	Links []Link `toml:"links" json:"links" validate:"dive"`
	CTA   Link   `toml:"cta" json:"cta"`
}

type Hero struct {
	Headline           string `toml:"headline" json:"headline" validate:"required"`
	Subheadline        string `toml:"subheadline" json:"subheadline"`
	BackgroundImage    string `toml:"background_image" json:"background_image"`
	BackgroundImageAlt string `toml:"background_image_alt" json:"background_image_alt"`
	PrimaryCTA         Link   `toml:"primary_cta" json:"primary_cta"`
	SecondaryCTA       Link   `toml:"secondary_cta" json:"secondary_cta"`
	Stats              []Stat `toml:"stats" json:"stats" validate:"dive"`
	ChapterNumber      string `toml:"chapter_number" json:"chapter_number"`
	ChapterTitle       string `toml:"chapter_title" json:"chapter_title"`
}

type Service struct {
	Title       string `toml:"title" json:"title" validate:"required"`
	Description string `toml:"description" json:"description"`
	Icon        string `toml:"icon" json:"icon"`
	Featured    bool   `toml:"featured" json:"featured"`
	Image       string `toml:"image" json:"image"`
}

type Services struct {
	Title    string    `toml:"title" json:"title" validate:"required"`
	Subtitle string    `toml:"subtitle" json:"subtitle"`
	Items    []Service `toml:"items" json:"items" validate:"min=1,dive"`
}

type About struct {
	Title      string     `toml:"title" json:"title" validate:"required"`
	Paragraphs []RichText `toml:"paragraphs" json:"paragraphs"`
	Image      string     `toml:"image" json:"image"`
	ImageAlt   string     `toml:"image_alt" json:"image_alt"`
	Stats      []Stat     `toml:"stats" json:"stats" validate:"dive"`
}

type GalleryItem struct {
	Src      string `toml:"src" json:"src" validate:"required"`
	Alt      string `toml:"alt" json:"alt" validate:"required"`
	Caption  string `toml:"caption" json:"caption"`
	Category string `toml:"category" json:"category"`
}

type Gallery struct {
	Title      string        `toml:"title" json:"title" validate:"required"`
	Subtitle   string        `toml:"subtitle" json:"subtitle"`
	Items      []GalleryItem `toml:"items" json:"items" validate:"dive"`
	Categories []string      `toml:"categories" json:"categories"`
}

type BeforeAfter struct {
	BeforeImage string `toml:"before_image" json:"before_image" validate:"required"`
	AfterImage  string `toml:"after_image" json:"after_image" validate:"required"`
	BeforeLabel string `toml:"before_label" json:"before_label"`
	AfterLabel  string `toml:"after_label" json:"after_label"`
	Caption     string `toml:"caption" json:"caption"`
	Category    string `toml:"category" json:"category"`
}

// Comparison is the before/after section.
type Comparison struct {
	Title      string        `toml:"title" json:"title"`
	Subtitle   string        `toml:"subtitle" json:"subtitle"`
	Items      []BeforeAfter `toml:"items" json:"items" validate:"dive"`
	Categories []string      `toml:"categories" json:"categories"`
}

type Member struct {
	Name        string   `toml:"name" json:"name" validate:"required"`
	Role        string   `toml:"role" json:"role"`
	Image       string   `toml:"image" json:"image"`
	Bio         string   `toml:"bio" json:"bio"`
	Specialties []string `toml:"specialties" json:"specialties"`
}

type Team struct {
	Title    string   `toml:"title" json:"title"`
	Subtitle string   `toml:"subtitle" json:"subtitle"`
	Members  []Member `toml:"members" json:"members" validate:"dive"`
}

type Testimonial struct {
	Quote  string `toml:"quote" json:"quote" validate:"required"`
	Name   string `toml:"name" json:"name" validate:"required"`
	Role   string `toml:"role" json:"role"`
	Rating int    `toml:"rating" json:"rating" validate:"min=0,max=5"`
}

type Testimonials struct {
	Title    string        `toml:"title" json:"title"`
	Subtitle string        `toml:"subtitle" json:"subtitle"`
	Items    []Testimonial `toml:"items" json:"items" validate:"dive"`
}

type Question struct {
	Question string   `toml:"question" json:"question" validate:"required"`
	Answer   RichText `toml:"answer" json:"answer" validate:"required"`
}

type FAQ struct {
	Title    string     `toml:"title" json:"title"`
	Subtitle string     `toml:"subtitle" json:"subtitle"`
	Items    []Question `toml:"items" json:"items" validate:"dive"`
}

type Tier struct {
	Name        string   `toml:"name" json:"name" validate:"required"`
	Price       string   `toml:"price" json:"price" validate:"required"`
	Period      string   `toml:"period" json:"period"`
	Description string   `toml:"description" json:"description"`
	Features    []string `toml:"features" json:"features"`
	CTAText     string   `toml:"cta_text" json:"cta_text"`
	CTAHref     string   `toml:"cta_href" json:"cta_href"`
	Popular     bool     `toml:"popular" json:"popular"`
}

type Pricing struct {
	Title    string `toml:"title" json:"title"`
	Subtitle string `toml:"subtitle" json:"subtitle"`
	Tiers    []Tier `toml:"tiers" json:"tiers" validate:"dive"`
}

type Contact struct {
	Title          string `toml:"title" json:"title" validate:"required"`
	Description    string `toml:"description" json:"description"`
	Phone          string `toml:"phone" json:"phone"`
	Email          string `toml:"email" json:"email" validate:"omitempty,email"`
	Address        string `toml:"address" json:"address"`
	Hours          string `toml:"hours" json:"hours"`
	SuccessMessage string `toml:"success_message" json:"success_message"`
}

type SocialLink struct {
	Platform string `toml:"platform" json:"platform" validate:"required"`
	URL      string `toml:"url" json:"url" validate:"required,url"`
}

type Footer struct {
	Logo      string       `toml:"logo" json:"logo" validate:"required"`
	Tagline   string       `toml:"tagline" json:"tagline"`
	Copyright string       `toml:"copyright" json:"copyright"`
	Links     []Link       `toml:"links" json:"links" validate:"dive"`
	Social    []SocialLink `toml:"social" json:"social" validate:"dive"`
}

type StickyCTA struct {
	Primary      Link   `toml:"primary" json:"primary"`
	Secondary    Link   `toml:"secondary" json:"secondary"`
	Phone        string `toml:"phone" json:"phone"`
	ShowOnScroll bool   `toml:"show_on_scroll" json:"show_on_scroll"`
}
