package config

import (
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// IPInfo contains settings for the external IP lookup widget.
type IPInfo struct {
	Enabled *bool
	URL     string
	// Token is the access token sent as the token query parameter.
	// It is empty by default, which uses the unauthenticated quota.
	Token *string
}

func (i *IPInfo) setDefaults() {
	i.Enabled = gosettings.DefaultPointer(i.Enabled, true)
	i.URL = gosettings.DefaultComparable(i.URL, "https://ipinfo.io")
	i.Token = gosettings.DefaultPointer(i.Token, "")
}

func (i IPInfo) Validate() (err error) {
	if !*i.Enabled {
		return nil
	}

	u, err := url.ParseRequestURI(i.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: scheme %q must be http or https",
			ErrURLNotValid, u.Scheme)
	}

	return nil
}

func (i IPInfo) String() string {
	return i.toLinesNode().String()
}

func (i IPInfo) toLinesNode() *gotree.Node {
	if !*i.Enabled {
		return gotree.New("IP lookup: disabled")
	}
	node := gotree.New("IP lookup")
	node.Appendf("URL: %s", i.URL)
	token := "[not set]"
	if *i.Token != "" {
		token = "[set]"
	}
	node.Appendf("Token: %s", token)
	return node
}

func (i *IPInfo) read(r *reader.Reader) (err error) {
	i.Enabled, err = r.BoolPtr("IPINFO_ENABLED")
	if err != nil {
		return err
	}
	i.URL = r.String("IPINFO_URL", reader.ForceLowercase(false))
	i.Token = r.Get("IPINFO_TOKEN", reader.ForceLowercase(false))
	return nil
}
