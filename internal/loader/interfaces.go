package loader

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher

// Fetcher fetches the raw content found at a site path such as
// /static/data/routers.json.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (body io.ReadCloser, err error)
}
