package domain

import "strings"

// MailtoURL opens a compose window addressed to the profile email.
func (p Profile) MailtoURL() string {
	return "mailto:" + p.Email
}

// WhatsAppURL is the messaging deep-link for the profile phone number.
func (p Profile) WhatsAppURL() string {
	return "https://wa.me/" + p.WhatsApp
}

// GitHubURL links to the profile's code-hosting page.
func (p Profile) GitHubURL() string {
	return "https://github.com/" + p.GitHub
}

// GitHubHandle is the "@handle" form shown to visitors.
func (p Profile) GitHubHandle() string {
	return "@" + p.GitHub
}

// IsExternal reports whether href leaves the page for another site.
// Mail links and in-page fragments are not external.
func IsExternal(href string) bool {
	switch {
	case href == "":
		return false
	case strings.HasPrefix(href, "mailto:"):
		return false
	case strings.HasPrefix(href, "#"):
		return false
	default:
		return true
	}
}
