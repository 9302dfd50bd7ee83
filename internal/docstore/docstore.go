// Package docstore abstracts the document store: schema-flexible records
// addressed by hierarchical collection paths.
package docstore

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
)

// ErrUnavailable is returned when the underlying store cannot be reached.
var ErrUnavailable = errors.New("docstore: store unavailable")

// ErrWriteRejected is returned when the store refuses a write (constraint
// violation, malformed payload). The write is atomic: a rejected append
// leaves no partial document behind.
var ErrWriteRejected = errors.New("docstore: write rejected")

// Store is the document store gateway. Implementations hold a long-lived
// connection handle created at startup and are safe for concurrent use.
type Store interface {
	// List returns every document under the collection path, with the
	// store-assigned id and created_at merged into each field map.
	// An empty collection yields an empty slice, not an error.
	List(ctx context.Context, collection string) ([]model.Document, error)

	// Append creates one document under the collection path with the given
	// fields. The store assigns the identifier and the creation timestamp;
	// the new identifier is returned.
	Append(ctx context.Context, collection string, fields model.Document) (string, error)
}

// DB is the minimal liveness interface the health endpoint consumes.
type DB interface {
	Ping(ctx context.Context) error
}

// Collection names used by this deployment.
const (
	ContactCollection   = "contact_messages"
	PortfolioCollection = "portfolio_items"
)

// CollectionPath builds the namespaced path for a collection, following the
// artifacts/<namespace>/public/data/<name> layout of the document store.
func CollectionPath(namespace, name string) string {
	return "artifacts/" + namespace + "/public/data/" + name
}
