package images

import "context"

// ObjectStore holds the image objects. Deleting a key that does not exist
// is not an error.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Copy(ctx context.Context, from string, to string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
