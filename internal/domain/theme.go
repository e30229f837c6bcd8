package domain

// ThemeKey is the storage key holding the dark-mode preference.
const ThemeKey = "darkMode"

const (
	themeDark  = "true"
	themeLight = "false"
)

// PreferenceStore is the key/value storage a Theme persists into.
// Get reports ok=false when the key is absent or unreadable.
type PreferenceStore interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
}

// Theme is the two-state light/dark preference.
type Theme struct {
	store PreferenceStore
	dark  bool
}

// LoadTheme reads the persisted preference. Only the literal "true" selects
// dark mode; an absent key, a nil store or any other value yields light.
func LoadTheme(store PreferenceStore) *Theme {
	t := &Theme{store: store}
	if store == nil {
		return t
	}
	if v, ok := store.Get(ThemeKey); ok {
		t.dark = ParseDark(v)
	}
	return t
}

// ParseDark is the storage decoding rule: exactly "true" means dark.
func ParseDark(v string) bool {
	return v == themeDark
}

// FormatDark encodes a flag the way it is persisted.
func FormatDark(dark bool) string {
	if dark {
		return themeDark
	}
	return themeLight
}

// Dark reports the current flag.
func (t *Theme) Dark() bool {
	return t.dark
}

// Name is "dark" or "light", used in cache keys and logs.
func (t *Theme) Name() string {
	if t.dark {
		return "dark"
	}
	return "light"
}

// ClassName is the class list of the root element.
func (t *Theme) ClassName() string {
	if t.dark {
		return "app dark"
	}
	return "app"
}

// Toggle flips the flag and persists it. The flag changes even if the
// store rejects the write; the error is returned for logging only.
func (t *Theme) Toggle() error {
	t.dark = !t.dark
	return t.persist()
}

func (t *Theme) persist() error {
	if t.store == nil {
		return nil
	}
	return t.store.Set(ThemeKey, FormatDark(t.dark))
}
