package theme

import "errors"

var ErrThemeUnknown = errors.New("theme is unknown")
