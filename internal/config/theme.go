package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Theme struct {
	// Default is the theme used when the browser does not send
	// its color scheme preference.
	Default string
	// SessionSecret signs the theme cookie. If empty, a random
	// secret is generated at startup and preferences do not
	// survive a restart.
	SessionSecret *string
}

func (t *Theme) setDefaults() {
	t.Default = gosettings.DefaultComparable(t.Default, "light")
	t.SessionSecret = gosettings.DefaultPointer(t.SessionSecret, "")
}

func (t Theme) Validate() (err error) {
	err = validate.IsOneOf(t.Default, "light", "dark")
	if err != nil {
		return fmt.Errorf("%w: default: %w", ErrThemeNotValid, err)
	}

	const minSecretLength = 32
	if *t.SessionSecret != "" && len(*t.SessionSecret) < minSecretLength {
		return fmt.Errorf("%w: %d bytes must be at least %d bytes",
			ErrSecretTooShort, len(*t.SessionSecret), minSecretLength)
	}

	return nil
}

func (t Theme) String() string {
	return t.toLinesNode().String()
}

func (t Theme) toLinesNode() *gotree.Node {
	node := gotree.New("Theme")
	node.Appendf("Default: %s", t.Default)
	secret := "[random]"
	if *t.SessionSecret != "" {
		secret = "[set]"
	}
	node.Appendf("Session secret: %s", secret)
	return node
}

func (t *Theme) read(r *reader.Reader) {
	t.Default = r.String("THEME_DEFAULT")
	t.SessionSecret = r.Get("THEME_SESSION_SECRET", reader.ForceLowercase(false))
}
