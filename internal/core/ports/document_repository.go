package ports

import (
	"context"

	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"
)

// DocumentRepository defines the read contract for GRNs and invoices. The
// fulfillment core never creates documents; vendors raise them elsewhere and
// the core only links pending ones to logical orders.
type DocumentRepository interface {
	// Get retrieves a document by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetPendingForCompany retrieves every document of the given kind for a
	// company whose status is still pending approval (raised or pending).
	GetPendingForCompany(
		ctx context.Context, companyID kernel.UUID, kind document.Kind,
	) ([]*document.Document, error)
}
