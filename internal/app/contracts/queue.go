package contracts

import "context"

// BundlePublisher hands encoded FHIR payloads to downstream sync consumers.
type BundlePublisher interface {
	PublishBundle(ctx context.Context, resourceType string, payload interface{}) error
}
