package render

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/routerlogin/routerlogin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, rootPath string) *Renderer {
	t.Helper()
	renderer, err := New(rootPath)
	require.NoError(t, err)
	return renderer
}

func Test_Renderer_RouterList(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	testCases := map[string]struct {
		routers     []models.Router
		contains    []string
		notContains []string
	}{
		"empty": {
			contains: []string{
				`<div class="alert alert-info" role="alert">` + MessageNoRouters + `</div>`,
			},
		},
		"default_credentials": {
			routers: []models.Router{{IP: "192.168.1.1", Brand: "TP-Link"}},
			contains: []string{
				`<h3 class="router-ip">192.168.1.1</h3>`,
				`<h4 class="router-brand">TP-Link</h4>`,
				"Default Username: <strong>admin</strong>",
				"Default Password: <strong>admin</strong>",
				`href="/router-guides/192-168-1-1"`,
			},
			notContains: []string{"Model:"},
		},
		"custom_credentials": {
			routers: []models.Router{{
				IP: "10.0.0.1", Brand: "Xfinity", Model: "XB7",
				Username: "cusadmin", Password: "highspeed",
			}},
			contains: []string{
				"Model: XB7",
				"Default Username: <strong>cusadmin</strong>",
				"Default Password: <strong>highspeed</strong>",
			},
		},
		"escaped": {
			routers: []models.Router{{IP: "192.168.1.1", Brand: "<script>"}},
			contains: []string{
				"&lt;script&gt;",
			},
			notContains: []string{"<script>"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fragment, err := renderer.RouterList(testCase.routers)

			require.NoError(t, err)
			for _, s := range testCase.contains {
				assert.Contains(t, string(fragment), s)
			}
			for _, s := range testCase.notContains {
				assert.NotContains(t, string(fragment), s)
			}
		})
	}
}

func Test_Renderer_RouterDetail(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	fragment, err := renderer.RouterDetail(models.Router{IP: "192.168.1.1", Brand: "TP-Link"})
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `<h1 class="router-ip mb-4">192.168.1.1</h1>`)
	assert.Contains(t, string(fragment), "<tr><th>Default Username</th><td><strong>admin</strong></td></tr>")
	assert.Contains(t, string(fragment), "<tr><th>Default Password</th><td><strong>admin</strong></td></tr>")
	assert.NotContains(t, string(fragment), "<tr><th>Model</th>")

	fragment, err = renderer.RouterNotFound()
	require.NoError(t, err)
	assert.Contains(t, string(fragment), "Router information not found.")
	assert.Contains(t, string(fragment), `<a href="/router-guides" class="alert-link">Return to router guides</a>.`)
}

func Test_Renderer_BrandRouterList(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	routers := []models.Router{
		{IP: "192.168.1.1", Brand: "TP-Link", Model: "Archer C7"},
		{IP: "192.168.0.1", Brand: "TP-Link"},
	}

	testCases := map[string]struct {
		brandRouters []models.Router
		filtered     []models.Router
		contains     []string
	}{
		"brand_without_routers": {
			contains: []string{
				"No Tp-link routers found in our database.",
				`<a href="/router-guides" class="alert-link">router guides</a>`,
			},
		},
		"no_match": {
			brandRouters: routers,
			filtered:     []models.Router{},
			contains:     []string{MessageNoBrandRouterMatch},
		},
		"generic_model": {
			brandRouters: routers,
			filtered:     routers,
			contains: []string{
				`<h4 class="card-title">Archer C7</h4>`,
				`<h4 class="card-title">Generic Model</h4>`,
				"View Detailed Guide",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fragment, err := renderer.BrandRouterList("tp-link",
				testCase.brandRouters, testCase.filtered)

			require.NoError(t, err)
			for _, s := range testCase.contains {
				assert.Contains(t, string(fragment), s)
			}
		})
	}
}

func Test_Renderer_brandIPs(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")
	ips := []string{"192.168.0.1", "tplinkwifi.net"}

	fragment, err := renderer.BrandIPList(ips)
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `<a href="/router-guides/tplinkwifi-net" class="btn btn-sm btn-outline-primary">Details</a>`)
	assert.Contains(t, string(fragment), "Direct Login to 192.168.0.1</a>")

	fragment, err = renderer.BrandIPList(nil)
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<div class="list-group-item">`+MessageNoBrandIPs+`</div>`), fragment)

	fragment, err = renderer.DirectLoginButtons(ips)
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `href="http://tplinkwifi.net"`)

	fragment, err = renderer.DirectLoginButtons(nil)
	require.NoError(t, err)
	assert.Contains(t, string(fragment), MessageNoBrandIPs)

	fragment, err = renderer.DefaultIP(ips)
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<a href="http://192.168.0.1" target="_blank" rel="noopener noreferrer">192.168.0.1</a>`), fragment)

	fragment, err = renderer.DefaultIP(nil)
	require.NoError(t, err)
	assert.Empty(t, fragment)
}

func Test_Renderer_BrandOptions(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	fragment, err := renderer.BrandOptions([]string{"Linksys", "TP-Link"}, "TP-Link")

	require.NoError(t, err)
	const expected = `<option value="">All Brands</option>
<option value="Linksys">Linksys</option>
<option value="TP-Link" selected>TP-Link</option>`
	assert.Equal(t, template.HTML(expected), fragment)
}

func Test_Renderer_ArticleDetail(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "/site")

	articles := []models.Article{
		{ID: "router-security-tips", Title: "Router Security Tips"},
		{ID: "port-forwarding-guide", Title: "Port Forwarding Guide"},
	}

	testCases := map[string]struct {
		article     models.Article
		contains    []string
		notContains []string
		errWrapped  error
	}{
		"html_content": {
			article: models.Article{
				ID:       "how-to-change-wifi-password",
				Title:    "How to Change WiFi Password",
				Category: "Guides",
				Date:     "May 1, 2024",
				Content:  "<p>Open the <em>wireless</em> settings.</p>",
				Tags:     []string{"wifi", "port forwarding"},
				Related:  []string{"router-security-tips", "missing-article"},
			},
			contains: []string{
				`<h1 class="display-4 mb-3">How to Change WiFi Password</h1>`,
				"<p>Open the <em>wireless</em> settings.</p>",
				`<a href="/site/blog/router-security-tips">Router Security Tips</a>`,
				`href="/site/blog?search=port%20forwarding"`,
				`href="/site/blog?search=wifi"`,
			},
			notContains: []string{"missing-article"},
		},
		"markdown_content": {
			article: models.Article{
				ID:      "port-forwarding-guide",
				Title:   "Port Forwarding Guide",
				Content: "## Open a port\n\nUse **TCP** or UDP.\n",
				Format:  models.ArticleFormatMarkdown,
			},
			contains: []string{
				`<h2 id="open-a-port">Open a port</h2>`,
				"<p>Use <strong>TCP</strong> or UDP.</p>",
			},
		},
		"unknown_format": {
			article: models.Article{
				ID:     "bad-format",
				Format: "asciidoc",
			},
			errWrapped: ErrArticleFormatUnknown,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fragment, err := renderer.ArticleDetail(testCase.article, articles)

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				return
			}
			require.NoError(t, err)
			for _, s := range testCase.contains {
				assert.Contains(t, string(fragment), s)
			}
			for _, s := range testCase.notContains {
				assert.NotContains(t, string(fragment), s)
			}
		})
	}
}

func Test_Renderer_ArticleList(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	fragment, err := renderer.ArticleList(nil)
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<div class="alert alert-info" role="alert">`+MessageNoArticles+`</div>`), fragment)

	fragment, err = renderer.ArticleList([]models.Article{{
		ID: "router-security-tips", Title: "Router Security Tips",
		Category: "Security", Date: "March 10, 2024", Preview: "Keep your network safe.",
	}})
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `<p class="article-date">March 10, 2024 - <span class="badge bg-secondary">Security</span></p>`)
	assert.Contains(t, string(fragment), `<a href="/blog/router-security-tips" class="btn btn-primary">Read More</a>`)

	fragment, err = renderer.ArticleNotFound()
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `Article not found. <a href="/blog" class="alert-link">Return to blog</a>.`)
}

func Test_Renderer_ipinfo(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	fragment, err := renderer.IPQuickDisplay("")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(MessageIPUndetected), fragment)

	fragment, err = renderer.IPQuickDisplay("203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, template.HTML("203.0.113.7"), fragment)

	fragment, err = renderer.IPDetails(IPDetails{
		IP: "203.0.113.7", Type: "IPv4", Hostname: Unknown,
	})
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `<tr><th scope="row">IP Type</th><td>IPv4</td></tr>`)
	assert.Contains(t, string(fragment), `<tr><th scope="row">Hostname</th><td>Unknown</td></tr>`)

	fragment, err = renderer.IPLoading()
	require.NoError(t, err)
	assert.Contains(t, string(fragment), "spinner-border")

	fragment, err = newTestRenderer(t, "/site").IPQuickPending()
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<span data-fragment-src="/site/fragments/ip-quick" `+
		`data-fallback="Unable to detect">Loading...</span>`), fragment)
}

func Test_message(t *testing.T) {
	t.Parallel()

	text, err := message("ip-address-failed")
	require.NoError(t, err)
	assert.Equal(t, MessageIPAddressLoadFailed, text)

	_, err = message("nope")
	assert.ErrorIs(t, err, ErrMessageUnknown)
	assert.EqualError(t, err, `message is unknown: "nope"`)
}

func Test_Renderer_Page(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "/site/")

	doc := NewDocument(PageGuides, "/site/router-guides")
	doc.SetTitle("Router Guides")
	doc.Search = `"><script>`
	doc.SetAttribute("data-bs-theme", "dark")
	doc.SetIconClass(IconThemeToggle, "fas fa-sun")
	doc.SetIconClass(IconThemeDropdown, "fas fa-sun me-1")
	doc.SetNavbarClass("navbar-dark bg-dark")
	doc.Replace(ContainerRouterList, "<p>routers</p>")
	doc.Replace(ContainerPopularRouters, "<li>popular</li>")

	var buffer bytes.Buffer
	err := renderer.Page(&buffer, doc)

	require.NoError(t, err)
	page := buffer.String()
	assert.Contains(t, page, `<html lang="en" data-bs-theme="dark">`)
	assert.Contains(t, page, "<title>Router Guides</title>")
	assert.Contains(t, page, `<nav class="navbar navbar-expand-lg navbar-dark bg-dark">`)
	assert.Contains(t, page, `<a class="nav-link active" href="/site/router-guides">Router Guides</a>`)
	assert.Contains(t, page, `<a class="nav-link" href="/site/blog">Blog</a>`)
	assert.Contains(t, page, `<button type="submit" id="theme-toggle" class="btn btn-link nav-link" aria-label="Toggle theme"><i class="fas fa-sun"></i></button>`)
	assert.Contains(t, page, `<i class="fas fa-sun me-1"></i>Theme`)
	assert.Contains(t, page, `<div class="row" id="router-list"><p>routers</p></div>`)
	assert.Contains(t, page, `<ul class="popular-routers-list list-unstyled"><li>popular</li></ul>`)
	assert.NotContains(t, page, `"><script>`)
}

func Test_Renderer_Page_none(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, "")

	var buffer bytes.Buffer
	err := renderer.Page(&buffer, NewDocument(PageNone, "/missing"))

	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "Page Not Found")
}
