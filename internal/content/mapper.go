package content

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// Mapper converts a parsed Document into domain records.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map builds the catalog. The Location and GitHub detail rows are derived
// from the profile unless the document lists them itself.
func (m *Mapper) Map(doc Document) (*domain.Catalog, error) {
	if strings.TrimSpace(doc.Profile.Name) == "" {
		return nil, fmt.Errorf("profile name is required")
	}

	profile := domain.Profile{
		Name:      strings.TrimSpace(doc.Profile.Name),
		ShortName: strings.TrimSpace(doc.Profile.ShortName),
		Location:  doc.Profile.Location,
		Email:     doc.Profile.Email,
		Phone:     doc.Profile.Phone,
		WhatsApp:  digitsOnly(doc.Profile.WhatsApp),
		GitHub:    strings.TrimPrefix(doc.Profile.GitHub, "@"),
		HeroBio:   doc.Profile.HeroBio,
		AboutBio:  doc.Profile.AboutBio,
	}

	stack := make([]domain.SkillCategory, 0, len(doc.Stack))
	for _, s := range doc.Stack {
		stack = append(stack, domain.SkillCategory{Title: s.Title, Techs: s.Techs})
	}

	projects := make([]domain.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		status, err := parseStatus(p.Status)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Title, err)
		}
		link := strings.TrimSpace(p.Link)
		if status.IsLive() && (link == "" || link == "#") {
			return nil, fmt.Errorf("project %q: status %q needs a link", p.Title, status)
		}
		if link == "" {
			link = "#"
		}
		projects = append(projects, domain.Project{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         link,
			Status:       status,
			Year:         p.Year,
		})
	}

	return &domain.Catalog{
		Profile:  profile,
		Stack:    stack,
		Projects: projects,
		Details:  mapDetails(profile, doc.Details),
	}, nil
}

func mapDetails(profile domain.Profile, docs []DetailDoc) []domain.DetailRow {
	rows := make([]domain.DetailRow, 0, len(docs)+2)
	has := make(map[string]bool, len(docs))
	for _, d := range docs {
		has[d.Label] = true
	}

	if !has["Location"] && profile.Location != "" {
		rows = append(rows, domain.DetailRow{Label: "Location", Value: profile.Location})
	}
	for _, d := range docs {
		rows = append(rows, domain.DetailRow{Label: d.Label, Value: d.Value})
	}
	if !has["GitHub"] && profile.GitHub != "" {
		rows = append(rows, domain.DetailRow{Label: "GitHub", Value: profile.GitHubHandle()})
	}
	return rows
}

func parseStatus(s string) (domain.ProjectStatus, error) {
	switch domain.ProjectStatus(strings.TrimSpace(s)) {
	case domain.StatusLive:
		return domain.StatusLive, nil
	case domain.StatusInDevelopment, "":
		return domain.StatusInDevelopment, nil
	default:
		return "", fmt.Errorf("unknown status %q (want %q or %q)", s, domain.StatusLive, domain.StatusInDevelopment)
	}
}

// digitsOnly keeps the digits of a phone number, as wa.me expects.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Revision identifies a content snapshot by the hash of its source bytes.
func Revision(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:12]
}
