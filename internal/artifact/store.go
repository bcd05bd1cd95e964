// Package artifact is the object-storage boundary. The platform's real
// bucket wrapper lives outside this service; the worker only needs "bytes
// in, public URL out", all-or-nothing.
package artifact

import "context"

type Store interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}
