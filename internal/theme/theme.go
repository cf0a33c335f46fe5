// Package theme holds the light/dark preference and the service that
// persists and applies it.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the colour scheme of the whole site.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the preference key the theme is persisted under.
const StorageKey = "theme"

// Parse accepts "light" or "dark" in any case. Use it for user input;
// stored values go through FromStored.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// FromStored maps a persisted value to a theme. Only the exact value "dark"
// selects Dark.
func FromStored(raw string) Theme {
	if Theme(raw) == Dark {
		return Dark
	}
	return Light
}

// Valid reports whether t is Light or Dark.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark scheme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// ToggleLabel is the caption of the button that switches away from t.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

func (t Theme) String() string {
	return string(t)
}
