package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/routerlogin/routerlogin/internal/httplog"
)

// NewFetcher returns an HTTP fetcher if the source is an http(s) base URL,
// and a directory fetcher otherwise.
//
//nolint:ireturn
func NewFetcher(source string, client *http.Client) Fetcher {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFetcher(client, source)
	}
	return NewFSFetcher(os.DirFS(source))
}

type HTTPFetcher struct {
	client  *http.Client
	baseURL string
}

func NewHTTPFetcher(client *http.Client, baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (
	body io.ReadCloser, err error) {
	url := f.baseURL + path
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("doing request: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		bodyString := httplog.BodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return nil, fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode), bodyString)
	}

	return response.Body, nil
}

type FSFetcher struct {
	fsys fs.FS
}

func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{
		fsys: fsys,
	}
}

func (f *FSFetcher) Fetch(ctx context.Context, path string) (
	body io.ReadCloser, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimPrefix(path, "/")
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return file, nil
}
