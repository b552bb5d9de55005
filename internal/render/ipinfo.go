package render

import "html/template"

// IPDetails renders the IP information table.
func (r *Renderer) IPDetails(details IPDetails) (fragment template.HTML, err error) {
	return r.fragment("ip-details", details)
}

// IPLoading renders the loading spinner shown while the IP
// information is being fetched.
func (r *Renderer) IPLoading() (fragment template.HTML, err error) {
	return r.fragment("ip-loading", MessageLoading)
}

// IPAddress renders the IP address line of the IP lookup page.
func (r *Renderer) IPAddress(ip string) (fragment template.HTML, err error) {
	return r.fragment("text", ip)
}

// IPQuickDisplay renders the IP address shown in the navigation bar,
// or a message if it is empty.
func (r *Renderer) IPQuickDisplay(ip string) (fragment template.HTML, err error) {
	if ip == "" {
		ip = MessageIPUndetected
	}
	return r.fragment("text", ip)
}

// IPQuickPending renders the navigation bar placeholder replaced
// by the browser with the quick IP fragment.
func (r *Renderer) IPQuickPending() (fragment template.HTML, err error) {
	return r.fragment("ip-quick-pending", nil)
}
