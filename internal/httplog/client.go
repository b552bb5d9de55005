// Package httplog logs the collection fetches and IP lookups sent by
// the site, and the requests it serves, at the debug level.
package httplog

import (
	"bytes"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

const (
	redacted         = "REDACTED"
	maxLoggedBodyLen = 256
)

// NewClient returns a copy of client whose transport logs each request
// line, followed by its response line or its error. The token query
// parameter and the Authorization header are redacted, and bodies are
// cut to maxLoggedBodyLen bytes.
func NewClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if httpTransport, ok := transport.(*http.Transport); ok {
		transport = httpTransport.Clone()
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &loggingTransport{
			next:   transport,
			logger: logger,
		},
	}
}

type loggingTransport struct {
	next   http.RoundTripper
	logger DebugLogger
}

func (t *loggingTransport) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	target := request.Method + " " + redactURL(request.URL)

	line := target + formatHeader(request.Header)
	if request.Body != nil && request.Body != http.NoBody {
		var body string
		request.Body, body = snapshotBody(request.Body)
		line += " | body: " + body
	}
	t.logger.Debug(line)

	response, err = t.next.RoundTrip(request)
	if err != nil {
		t.logger.Debug(target + " failed: " + err.Error())
		return nil, err
	}

	line = response.Status + formatHeader(response.Header)
	if response.Body != nil && response.Body != http.NoBody {
		var body string
		response.Body, body = snapshotBody(response.Body)
		line += " | body: " + body
	}
	t.logger.Debug(line)

	return response, nil
}

func redactURL(u *url.URL) string {
	query := u.Query()
	if !query.Has("token") {
		return u.String()
	}
	query.Set("token", redacted)
	redactedURL := *u
	redactedURL.RawQuery = query.Encode()
	return redactedURL.String()
}

// formatHeader returns the header sorted by key, prefixed with
// " | headers: ", or the empty string for an empty header.
func formatHeader(header http.Header) string {
	if len(header) == 0 {
		return ""
	}
	fields := make([]string, 0, len(header))
	for _, key := range slices.Sorted(maps.Keys(header)) {
		value := strings.Join(header[key], ",")
		if key == "Authorization" {
			value = redacted
		}
		fields = append(fields, key+": "+value)
	}
	return " | headers: " + strings.Join(fields, "; ")
}

// snapshotBody reads the body and returns a replacement body with
// the same content, together with its shortened single line form.
func snapshotBody(body io.ReadCloser) (newBody io.ReadCloser, logged string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil {
		return io.NopCloser(bytes.NewReader(b)), "error reading body: " + err.Error()
	}

	logged = ToSingleLine(string(b))
	if len(logged) > maxLoggedBodyLen {
		logged = strings.ToValidUTF8(logged[:maxLoggedBodyLen], "") +
			"... (" + strconv.Itoa(len(b)) + " bytes)"
	}
	return io.NopCloser(bytes.NewReader(b)), logged
}
