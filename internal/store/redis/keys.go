package redis

const (
	// KeyPrefix namespaces every folio key
	KeyPrefix = "folio:"
	// KeyPrefixPage is the prefix for rendered page keys
	KeyPrefixPage = KeyPrefix + "page:"
	// KeyViews counts rendered page views
	KeyViews = KeyPrefix + "stats:views"
	// KeyTogglesDark counts toggles that ended in dark mode
	KeyTogglesDark = KeyPrefix + "stats:toggles:dark"
	// KeyTogglesLight counts toggles that ended in light mode
	KeyTogglesLight = KeyPrefix + "stats:toggles:light"
)

// PageKey returns the key of a rendered page for a catalog revision and theme.
func PageKey(revision, theme string) string {
	return KeyPrefixPage + revision + ":" + theme
}

// ToggleKey returns the counter key for a toggle outcome.
func ToggleKey(dark bool) string {
	if dark {
		return KeyTogglesDark
	}
	return KeyTogglesLight
}
