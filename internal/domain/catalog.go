package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProjectStatus is the lifecycle label shown next to a project.
type ProjectStatus string

const (
	StatusLive          ProjectStatus = "Live"
	StatusInDevelopment ProjectStatus = "In Development"
)

// IsLive reports whether the project is publicly reachable.
func (s ProjectStatus) IsLive() bool {
	return s == StatusLive
}

// Profile holds the identity and contact details of the site owner.
type Profile struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"` // digits only, used in wa.me links
	GitHub    string `json:"github"`   // handle without "@"
	HeroBio   string `json:"hero_bio"`
	AboutBio  string `json:"about_bio"`
}

// Initials returns the upper-cased first letters of the first two words of Name.
func (p Profile) Initials() string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(p.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}

// DisplayName is the short name used in the nav bar and hero heading,
// falling back to the first word of Name.
func (p Profile) DisplayName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return p.Name
}

// SkillCategory groups technologies under a heading.
type SkillCategory struct {
	Title string   `json:"title"`
	Techs []string `json:"techs"`
}

// Project is a portfolio entry.
type Project struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Technologies []string      `json:"technologies"`
	Link         string        `json:"link"` // "#" when there is nothing to link to yet
	Status       ProjectStatus `json:"status"`
	Year         string        `json:"year"`
}

// DetailRow is a label/value pair in the about section.
type DetailRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Highlighted marks the availability row.
func (d DetailRow) Highlighted() bool {
	return d.Label == "Status"
}

// Catalog is the complete, read-only content of the site.
type Catalog struct {
	Profile  Profile         `json:"profile"`
	Stack    []SkillCategory `json:"stack"`
	Projects []Project       `json:"projects"`
	Details  []DetailRow     `json:"details"`
	Revision string          `json:"revision"`
}

// LiveProjects returns the projects that carry a public link.
func (c *Catalog) LiveProjects() []Project {
	var live []Project
	for _, p := range c.Projects {
		if p.Status.IsLive() {
			live = append(live, p)
		}
	}
	return live
}
