package contracts

import "context"

// AttachmentResolver mints a time-limited retrieval URL for a stored file
// key. A missing/empty key resolves to "" without error; implementations
// must not panic on unknown keys.
type AttachmentResolver interface {
	ResolveRetrievalURL(ctx context.Context, fileKey string) (string, error)
}
