package render

import "errors"

var (
	ErrPageUnknown          = errors.New("page is unknown")
	ErrArticleFormatUnknown = errors.New("article format is unknown")
	ErrMessageUnknown       = errors.New("message is unknown")
)
