// Package theme controls the light and dark color scheme of a page view.
package theme

import (
	"fmt"
	"strings"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the storage key holding the persisted theme.
const StorageKey = "theme"

func Parse(s string) (theme Theme, err error) {
	switch Theme(strings.ToLower(s)) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrThemeUnknown, s)
	}
}

func (t Theme) toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Ambient returns the theme from the value of the
// Sec-CH-Prefers-Color-Scheme request header, or the fallback
// theme if the header value is empty or not valid.
func Ambient(headerValue string, fallback Theme) Theme {
	theme, err := Parse(strings.Trim(headerValue, `" `))
	if err != nil {
		return fallback
	}
	return theme
}
