// Package content loads the site copy (speakers, FAQ, packages, itinerary,
// navigation) from a YAML document so it can change without touching code.
package content

import "github.com/nfrund/salon/internal/domain"

// Document is the full content of the landing page.
type Document struct {
	Site       Site         `yaml:"site" validate:"required"`
	Nav        []NavItem    `yaml:"nav" validate:"required,min=1,dive"`
	Hero       Hero         `yaml:"hero" validate:"required"`
	About      About        `yaml:"about" validate:"required"`
	Quote      string       `yaml:"quote"`
	Speakers   []Speaker    `yaml:"speakers" validate:"dive"`
	Packages   []Package    `yaml:"packages" validate:"required,min=1,dive"`
	Fellowship Fellowship   `yaml:"fellowship"`
	Itinerary  Itinerary    `yaml:"itinerary"`
	FAQ        []FAQItem    `yaml:"faq" validate:"dive"`
	Footer     Footer       `yaml:"footer" validate:"required"`
	Images     SectionImage `yaml:"images"`
}

// Site holds the brand and event facts shown in several sections.
type Site struct {
	Name              string `yaml:"name" validate:"required"`
	Tagline           string `yaml:"tagline"`
	Dates             string `yaml:"dates"`
	Location          string `yaml:"location"`
	FontStylesheetURL string `yaml:"font_stylesheet_url" validate:"omitempty,url"`
	Language          string `yaml:"language"`
}

// NavItem is one navigation destination.
type NavItem struct {
	Label    string `yaml:"label" validate:"required"`
	Href     string `yaml:"href" validate:"required"`
	External bool   `yaml:"external"`
}

// Hero is the full-height opening section.
type Hero struct {
	Badge    string `yaml:"badge"`
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
	Lead     string `yaml:"lead"`
	CTALabel string `yaml:"cta_label" validate:"required"`
	Image    string `yaml:"image"`
}

// About is the "essence" section.
type About struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Title      string   `yaml:"title" validate:"required"`
	Highlight  string   `yaml:"highlight"`
	Paragraphs []string `yaml:"paragraphs"`
	LinkLabel  string   `yaml:"link_label"`
	LinkHref   string   `yaml:"link_href"`
	Image      string   `yaml:"image"`
}

// Speaker is a featured voice. Display order follows the document.
type Speaker struct {
	Name  string `yaml:"name" validate:"required"`
	Title string `yaml:"title"`
	Quote string `yaml:"quote"`
	Image string `yaml:"image"`
}

// Package is one participation tier card.
type Package struct {
	Tier        domain.PackageType `yaml:"tier" validate:"required,oneof=standard prestige fellowship invited"`
	Name        string             `yaml:"name" validate:"required"`
	Price       int                `yaml:"price" validate:"gte=0"`
	Currency    string             `yaml:"currency"`
	Features    []string           `yaml:"features"`
	CTALabel    string             `yaml:"cta_label"`
	CheckoutURL string             `yaml:"checkout_url" validate:"omitempty,url"`
	Featured    bool               `yaml:"featured"`
}

// Fellowship is the student track call-out next to the package cards.
type Fellowship struct {
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	CTALabel string `yaml:"cta_label"`
}

// Itinerary is rendered either as an outbound link or as an in-page timeline.
type Itinerary struct {
	Mode        string         `yaml:"mode" validate:"omitempty,oneof=external timeline"`
	ExternalURL string         `yaml:"external_url" validate:"omitempty,url"`
	Title       string         `yaml:"title"`
	Days        []ItineraryDay `yaml:"days" validate:"dive"`
}

// ItineraryDay is one entry of the timeline.
type ItineraryDay struct {
	Label   string   `yaml:"label" validate:"required"`
	Title   string   `yaml:"title" validate:"required"`
	Details []string `yaml:"details"`
}

// FAQItem is one accordion entry. Answers are Markdown.
type FAQItem struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// Footer holds contact details and external hand-off links.
type Footer struct {
	Blurb        string    `yaml:"blurb"`
	Links        []NavItem `yaml:"links" validate:"dive"`
	Email        string    `yaml:"email" validate:"omitempty,email"`
	Phone        string    `yaml:"phone"`
	ChatDeepLink string    `yaml:"chat_deep_link" validate:"omitempty,url"`
	Socials      []Social  `yaml:"socials" validate:"dive"`
	Copyright    string    `yaml:"copyright"`
}

// Social is a footer badge.
type Social struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href"`
}

// SectionImage holds decorative background URLs.
type SectionImage struct {
	Noise     string `yaml:"noise"`
	Arabesque string `yaml:"arabesque"`
	Break     string `yaml:"break"`
}

// Package returns the card for tier.
func (d *Document) Package(tier domain.PackageType) (Package, bool) {
	for _, p := range d.Packages {
		if p.Tier == tier {
			return p, true
		}
	}
	return Package{}, false
}

// ItineraryExternal reports whether the itinerary is an outbound link.
func (d *Document) ItineraryExternal() bool {
	if d.Itinerary.Mode == "" {
		return len(d.Itinerary.Days) == 0 && d.Itinerary.ExternalURL != ""
	}
	return d.Itinerary.Mode == "external"
}
