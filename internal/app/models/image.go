package models

import "io"

// ProxiedImage is an image streamed back to the caller. Body must be closed.
type ProxiedImage struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	FromCache     bool
}

// CachedImage is an image held in the object cache.
type CachedImage struct {
	Body        []byte
	ContentType string
}
