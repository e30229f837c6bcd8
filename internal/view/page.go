package view

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// AssetsPath is where the embedded CSS and JS are mounted.
const AssetsPath = "/assets"

// Asset file names under the public base URL.
const (
	AvatarFile = "Profile.jpeg"
	PhotoFile  = "About.jpg"
	VideoFile  = "work.mp4"
)

// Options carries the configuration the page needs.
type Options struct {
	PublicURL       string  // base for photos and video, without trailing slash
	AssetsURL       string  // base for the embedded CSS/JS
	ScrollThreshold int     // px
	RevealThreshold float64 // visible fraction
	CopyrightYear   int
}

// Page is the view model of the whole site.
type Page struct {
	Title       string
	Description string
	ThemeClass  string
	Dark        bool
	AssetsURL   string
	Script      ScriptConfig

	Nav      NavView
	Hero     HeroView
	Tech     TechView
	Projects ProjectsView
	About    AboutView
	Contact  ContactView
	Footer   FooterView
}

// ScriptConfig is handed to folio.js through data attributes.
type ScriptConfig struct {
	ScrollThreshold int
	RevealThreshold float64
	ThemeKey        string
}

// RevealView holds the wrapper attributes of one reveal-on-scroll element.
type RevealView struct {
	Class     string
	Style     string
	Threshold float64
}

// Link is an anchor with its target policy resolved.
type Link struct {
	Label    string
	Href     string
	External bool
}

type NavView struct {
	Class      string
	Name       string
	AvatarURL  string
	AvatarAlt  string
	Links      []Link
	ThemeLabel string
}

type HeroView struct {
	Eyebrow       string
	Name          string
	Bio           string
	WhatsApp      Link
	PhotoURL      string
	PhotoAlt      string
	PhotoFallback string
}

type TechView struct {
	LabelReveal RevealView
	TitleReveal RevealView
	SubReveal   RevealView
	Cards       []TechCard
}

type TechCard struct {
	Reveal RevealView
	Title  string
	Techs  []string
}

type ProjectsView struct {
	LabelReveal RevealView
	TitleReveal RevealView
	Rows        []ProjectRow
}

type ProjectRow struct {
	Reveal      RevealView
	Title       string
	Description string
	Tags        []string
	Year        string
	Status      string
	StatusClass string
	// View is set only for live projects.
	View *Link
}

type AboutView struct {
	LabelReveal   RevealView
	TitleReveal   RevealView
	BioReveal     RevealView
	DetailsReveal RevealView
	CodeReveal    RevealView
	PhotoReveal   RevealView
	Bio           string
	Details       []DetailView
	GitHub        Link
	PhotoURL      string
	PhotoAlt      string
	PhotoFallback string
}

type DetailView struct {
	Label string
	Value string
	Class string
}

type ContactView struct {
	LabelReveal RevealView
	TitleReveal RevealView
	SubReveal   RevealView
	CardsReveal RevealView
	VideoReveal RevealView
	Cards       []ContactCard
	VideoURL    string
}

type ContactCard struct {
	Link
	Icon  template.HTML
	Value string
	Class string
}

type FooterView struct {
	Copy  string
	Links []Link
}

// navSections are the in-page anchors, in nav order.
var navSections = []string{"Tech", "Projects", "About", "Contact"}

// Build maps the catalog onto the page view model.
func Build(c *domain.Catalog, theme *domain.Theme, opts Options) *Page {
	p := c.Profile
	reveal := revealer(opts.RevealThreshold)
	scroll := domain.NewScrollTracker(opts.ScrollThreshold)

	page := &Page{
		Title:       p.Name + " — Portfolio",
		Description: p.HeroBio,
		ThemeClass:  theme.ClassName(),
		Dark:        theme.Dark(),
		AssetsURL:   opts.AssetsURL,
		Script: ScriptConfig{
			ScrollThreshold: int(scroll.Threshold),
			RevealThreshold: reveal(0, "").Threshold,
			ThemeKey:        domain.ThemeKey,
		},
	}

	page.Nav = NavView{
		Class:     scroll.NavClass(),
		Name:      p.DisplayName(),
		AvatarURL: assetURL(opts.PublicURL, AvatarFile),
		AvatarAlt: p.Name,
		Links:     navLinks(),
	}
	if theme.Dark() {
		page.Nav.ThemeLabel = "Switch to light theme"
	} else {
		page.Nav.ThemeLabel = "Switch to dark theme"
	}

	page.Hero = HeroView{
		Eyebrow:       "Developer · Designer · Problem Solver",
		Name:          p.DisplayName(),
		Bio:           p.HeroBio,
		WhatsApp:      newLink("Start a Conversation", p.WhatsAppURL()),
		PhotoURL:      assetURL(opts.PublicURL, PhotoFile),
		PhotoAlt:      p.Name,
		PhotoFallback: domain.FallbackImage(p.Initials(), domain.HeroFallback),
	}

	page.Tech = TechView{
		LabelReveal: reveal(0, ""),
		TitleReveal: reveal(80, ""),
		SubReveal:   reveal(150, ""),
	}
	for i, cat := range c.Stack {
		page.Tech.Cards = append(page.Tech.Cards, TechCard{
			Reveal: reveal(i*70, ""),
			Title:  cat.Title,
			Techs:  cat.Techs,
		})
	}

	page.Projects = ProjectsView{
		LabelReveal: reveal(0, ""),
		TitleReveal: reveal(80, ""),
	}
	for i, proj := range c.Projects {
		page.Projects.Rows = append(page.Projects.Rows, projectRow(proj, reveal(i*100, "")))
	}

	page.About = AboutView{
		LabelReveal:   reveal(0, ""),
		TitleReveal:   reveal(80, ""),
		BioReveal:     reveal(160, ""),
		DetailsReveal: reveal(240, ""),
		CodeReveal:    reveal(320, ""),
		PhotoReveal:   reveal(180, "about-right"),
		Bio:           p.AboutBio,
		GitHub:        newLink("See My Code", p.GitHubURL()),
		PhotoURL:      assetURL(opts.PublicURL, PhotoFile),
		PhotoAlt:      p.Name,
		PhotoFallback: domain.FallbackImage(p.Initials(), domain.AboutFallback),
	}
	for _, d := range c.Details {
		dv := DetailView{Label: d.Label, Value: d.Value, Class: "about__val"}
		if d.Highlighted() {
			dv.Class += " open"
		}
		page.About.Details = append(page.About.Details, dv)
	}

	page.Contact = ContactView{
		LabelReveal: reveal(0, ""),
		TitleReveal: reveal(80, ""),
		SubReveal:   reveal(160, ""),
		CardsReveal: reveal(240, ""),
		VideoReveal: reveal(200, "contact-right"),
		Cards:       contactCards(p),
		VideoURL:    assetURL(opts.PublicURL, VideoFile),
	}

	page.Footer = FooterView{
		Copy: fmt.Sprintf("© %d %s", opts.CopyrightYear, p.Name),
		Links: []Link{
			newLink("GitHub", p.GitHubURL()),
			newLink("Email", p.MailtoURL()),
			newLink("WhatsApp", p.WhatsAppURL()),
		},
	}

	return page
}

func projectRow(p domain.Project, r RevealView) ProjectRow {
	row := ProjectRow{
		Reveal:      r,
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Technologies,
		Year:        p.Year,
		Status:      string(p.Status),
		StatusClass: "status--dev",
	}
	if p.Status.IsLive() {
		row.StatusClass = "status--live"
		view := newLink("View", p.Link)
		row.View = &view
	}
	return row
}

func contactCards(p domain.Profile) []ContactCard {
	cards := []ContactCard{
		{Link: newLink("Email", p.MailtoURL()), Icon: MailIcon, Value: p.Email},
		{Link: newLink("Phone · WhatsApp", p.WhatsAppURL()), Icon: PhoneIcon, Value: p.Phone, Class: "contact-card--highlight"},
		{Link: newLink("GitHub", p.GitHubURL()), Icon: GitHubIcon, Value: p.GitHubHandle()},
	}
	for i := range cards {
		cards[i].Class = strings.TrimSpace("contact-card " + cards[i].Class)
	}
	return cards
}

func navLinks() []Link {
	links := make([]Link, 0, len(navSections))
	for _, label := range navSections {
		links = append(links, newLink(label, "#"+strings.ToLower(label)))
	}
	return links
}

func newLink(label, href string) Link {
	return Link{Label: label, Href: href, External: domain.IsExternal(href)}
}

// revealer returns a constructor bound to the configured threshold.
// delayMs is the transition delay, extra is appended to the class list.
func revealer(threshold float64) func(delayMs int, extra string) RevealView {
	return func(delayMs int, extra string) RevealView {
		r := domain.NewReveal(threshold, time.Duration(delayMs)*time.Millisecond)
		return RevealView{Class: r.Class(extra), Style: r.Style(), Threshold: r.Threshold()}
	}
}

func assetURL(base, file string) string {
	return base + "/" + file
}
