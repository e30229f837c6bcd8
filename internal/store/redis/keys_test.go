package redis

import "testing"

func TestPageKey(t *testing.T) {
	if got := PageKey("abc123", "dark"); got != "folio:page:abc123:dark" {
		t.Errorf("PageKey() = %q", got)
	}
}

func TestToggleKey(t *testing.T) {
	if ToggleKey(true) != KeyTogglesDark {
		t.Errorf("ToggleKey(true) = %q", ToggleKey(true))
	}
	if ToggleKey(false) != KeyTogglesLight {
		t.Errorf("ToggleKey(false) = %q", ToggleKey(false))
	}
}
