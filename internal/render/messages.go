package render

import "fmt"

const (
	MessageNoRouters           = "No routers match your search criteria. Please try a different search term or filter."
	MessageNoBrandRouterMatch  = "No routers match your search criteria. Please try a different search term."
	MessageNoArticles          = "No articles match your search criteria. Please try a different search term."
	MessageNoBrandIPs          = "No IP addresses found for this brand."
	MessageRoutersLoadFailed   = "Failed to load router information. Please try again later."
	MessageArticlesLoadFailed  = "Failed to load articles. Please try again later."
	MessageArticleLoadFailed   = "Failed to load article details. Please try again later."
	MessageIPLookupFailed      = "Failed to load IP information. Please try again later."
	MessageIPAddressLoadFailed = "Error loading IP"
	MessageIPUndetected        = "Unable to detect"
	MessageLoading             = "Loading..."
)

const (
	DefaultCredential = "admin"
	GenericModel      = "Generic Model"
	Unknown           = "Unknown"
	NotAvailable      = "N/A"
)

// clientMessages are the messages the browser scripts display
// when a fragment request fails.
var clientMessages = map[string]string{ //nolint:gochecknoglobals
	"ip-address-failed": MessageIPAddressLoadFailed,
	"ip-lookup-failed":  MessageIPLookupFailed,
	"ip-undetected":     MessageIPUndetected,
	"loading":           MessageLoading,
}

func message(key string) (string, error) {
	text, ok := clientMessages[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMessageUnknown, key)
	}
	return text, nil
}
