// Package ipinfo looks up IP address information from an
// ipinfo.io compatible API and renders it on pages.
package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"github.com/routerlogin/routerlogin/internal/httplog"
)

type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

func New(client *http.Client, baseURL, token string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

// Result is the information about an IP address.
// Fields are empty when absent from the response.
type Result struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Org      string `json:"org"`
	Timezone string `json:"timezone"`
}

// Lookup fetches information about the IP address. If the IP address
// is not globally routable, the information is about the public IP
// address this program is seen from.
func (c *Client) Lookup(ctx context.Context, ip netip.Addr) (result Result, err error) {
	url := c.makeURL(ip)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return result, fmt.Errorf("doing request: %w", err)
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusTooManyRequests:
		bodyString := httplog.BodyToSingleLine(response.Body)
		return result, fmt.Errorf("%w (%s)", ErrTooManyRequests, bodyString)
	default:
		bodyString := httplog.BodyToSingleLine(response.Body)
		return result, fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode), bodyString)
	}

	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&result)
	if err != nil {
		return result, fmt.Errorf("decoding JSON response: %w", err)
	}

	return result, nil
}

func (c *Client) makeURL(ip netip.Addr) string {
	path := "/json"
	if IsPublic(ip) {
		path = "/" + ip.String() + "/json"
	}
	u := c.baseURL + path
	if c.token != "" {
		u += "?" + url.Values{"token": []string{c.token}}.Encode()
	}
	return u
}

// IsPublic returns true if the IP address is valid and globally routable.
func IsPublic(ip netip.Addr) bool {
	return ip.IsValid() && ip.IsGlobalUnicast() && !ip.IsPrivate()
}
