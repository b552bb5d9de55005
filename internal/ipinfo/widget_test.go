package ipinfo_test

import (
	"context"
	"errors"
	"html/template"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/routerlogin/routerlogin/internal/ipinfo"
	"github.com/routerlogin/routerlogin/internal/ipinfo/mock_ipinfo"
	"github.com/routerlogin/routerlogin/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	renderer, err := render.New("")
	require.NoError(t, err)
	return renderer
}

func Test_Widget_Details(t *testing.T) {
	t.Parallel()

	ip := netip.MustParseAddr("203.0.113.7")

	testCases := map[string]struct {
		result         ipinfo.Result
		lookupErr      error
		address        template.HTML
		detailsContain []string
	}{
		"missing_hostname": {
			result: ipinfo.Result{
				IP:       "203.0.113.7",
				City:     "Paris",
				Region:   "Ile-de-France",
				Country:  "FR",
				Loc:      "48.8534,2.3488",
				Org:      "AS3215 Orange S.A.",
				Timezone: "Europe/Paris",
			},
			address: "203.0.113.7",
			detailsContain: []string{
				`<tr><th scope="row">IP Type</th><td>IPv4</td></tr>`,
				`<tr><th scope="row">Location</th><td>Paris, Ile-de-France, FR</td></tr>`,
				`<tr><th scope="row">Latitude</th><td>48.8534</td></tr>`,
				`<tr><th scope="row">Longitude</th><td>2.3488</td></tr>`,
				`<tr><th scope="row">ISP / Organization</th><td>AS3215 Orange S.A.</td></tr>`,
				`<tr><th scope="row">Hostname</th><td>Unknown</td></tr>`,
				`<tr><th scope="row">Timezone</th><td>Europe/Paris</td></tr>`,
			},
		},
		"lookup_error": {
			lookupErr: errors.New("dial error"),
			address:   render.MessageIPAddressLoadFailed,
			detailsContain: []string{
				`<div class="alert alert-danger" role="alert">` + render.MessageIPLookupFailed + `</div>`,
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()
			lookuper := mock_ipinfo.NewMockLookuper(ctrl)
			lookuper.EXPECT().Lookup(ctx, ip).Return(testCase.result, testCase.lookupErr)
			logger := mock_ipinfo.NewMockLogger(ctrl)
			if testCase.lookupErr != nil {
				logger.EXPECT().Error("looking up IP information: dial error")
			}

			widget := ipinfo.NewWidget(lookuper, newTestRenderer(t), logger)

			address, details, err := widget.Details(ctx, ip)

			require.NoError(t, err)
			assert.Equal(t, testCase.address, address)
			for _, expected := range testCase.detailsContain {
				assert.Contains(t, string(details), expected)
			}
		})
	}
}

func Test_Widget_Loading_no_container(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	widget := ipinfo.NewWidget(mock_ipinfo.NewMockLookuper(ctrl),
		newTestRenderer(t), mock_ipinfo.NewMockLogger(ctrl))
	doc := render.NewDocument(render.PageHome, "/")

	err := widget.Loading(doc)

	require.NoError(t, err)
	assert.Empty(t, doc.Container(render.ContainerIPDetails))
}

func Test_Widget_Loading(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	widget := ipinfo.NewWidget(mock_ipinfo.NewMockLookuper(ctrl),
		newTestRenderer(t), mock_ipinfo.NewMockLogger(ctrl))
	doc := render.NewDocument(render.PageIPLookup, "/ip-lookup")

	err := widget.Loading(doc)

	require.NoError(t, err)
	assert.Equal(t, template.HTML(render.MessageLoading), doc.Container(render.ContainerIPAddress))
	assert.Contains(t, string(doc.Container(render.ContainerIPDetails)), `id="loading-spinner"`)
}

func Test_Widget_QuickDisplay(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		visitorIP netip.Addr
		display   template.HTML
	}{
		"public_visitor": {
			visitorIP: netip.MustParseAddr("198.51.100.4"),
			display:   "198.51.100.4",
		},
		"private_visitor": {
			visitorIP: netip.MustParseAddr("192.168.1.20"),
			display: `<span data-fragment-src="/fragments/ip-quick" ` +
				`data-fallback="Unable to detect">Loading...</span>`,
		},
		"no_visitor_address": {
			display: `<span data-fragment-src="/fragments/ip-quick" ` +
				`data-fallback="Unable to detect">Loading...</span>`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			// No lookup is expected on the mock.
			lookuper := mock_ipinfo.NewMockLookuper(ctrl)
			widget := ipinfo.NewWidget(lookuper, newTestRenderer(t), mock_ipinfo.NewMockLogger(ctrl))
			doc := render.NewDocument(render.PageHome, "/")

			err := widget.QuickDisplay(doc, testCase.visitorIP)

			require.NoError(t, err)
			assert.Equal(t, testCase.display, doc.Container(render.ContainerIPQuickDisplay))
		})
	}
}

func Test_Widget_QuickLookup(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		result       ipinfo.Result
		lookupErr    error
		fragment     template.HTML
		warnExpected string
	}{
		"success": {
			result:   ipinfo.Result{IP: "203.0.113.9"},
			fragment: "203.0.113.9",
		},
		"lookup_error": {
			lookupErr:    ipinfo.ErrTooManyRequests,
			fragment:     render.MessageIPUndetected,
			warnExpected: "looking up public IP address: too many requests sent",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			visitorIP := netip.MustParseAddr("127.0.0.1")
			lookuper := mock_ipinfo.NewMockLookuper(ctrl)
			lookuper.EXPECT().Lookup(gomock.Any(), visitorIP).
				DoAndReturn(func(ctx context.Context, _ netip.Addr) (ipinfo.Result, error) {
					deadline, ok := ctx.Deadline()
					assert.True(t, ok)
					assert.LessOrEqual(t, time.Until(deadline), ipinfo.QuickLookupTimeout)
					return testCase.result, testCase.lookupErr
				})
			logger := mock_ipinfo.NewMockLogger(ctrl)
			if testCase.warnExpected != "" {
				logger.EXPECT().Warn(testCase.warnExpected)
			}

			widget := ipinfo.NewWidget(lookuper, newTestRenderer(t), logger)

			fragment, err := widget.QuickLookup(context.Background(), visitorIP)

			require.NoError(t, err)
			assert.Equal(t, testCase.fragment, fragment)
		})
	}
}

func Test_MakeDetails(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		result  ipinfo.Result
		details render.IPDetails
	}{
		"empty": {
			details: render.IPDetails{
				IP:        render.NotAvailable,
				Type:      "IPv4",
				Location:  ", , ",
				Latitude:  render.Unknown,
				Longitude: render.Unknown,
				Org:       render.Unknown,
				Hostname:  render.Unknown,
				Timezone:  render.Unknown,
			},
		},
		"ipv6": {
			result: ipinfo.Result{
				IP:       "2001:db8::1",
				Hostname: "host.example.com",
				City:     "Berlin",
				Region:   "Land Berlin",
				Country:  "DE",
				Loc:      "52.5244,13.4105",
				Org:      "AS64500 Example",
				Timezone: "Europe/Berlin",
			},
			details: render.IPDetails{
				IP:        "2001:db8::1",
				Type:      "IPv6",
				Location:  "Berlin, Land Berlin, DE",
				Latitude:  "52.5244",
				Longitude: "13.4105",
				Org:       "AS64500 Example",
				Hostname:  "host.example.com",
				Timezone:  "Europe/Berlin",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			details := ipinfo.MakeDetails(testCase.result)
			assert.Equal(t, testCase.details, details)
		})
	}
}
