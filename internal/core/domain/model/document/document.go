package document

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrDocumentIsNotConstructed is returned when a Document was not created
// through NewDocument or RestoreDocument.
var ErrDocumentIsNotConstructed = errors.New(
	"Document must be created via NewDocument or RestoreDocument")

// Kind distinguishes the two vendor-raised document types that can block a
// logical order: goods receipt notes and invoices.
type Kind int

const (
	// UnknownKind represents an invalid or undefined document kind.
	UnknownKind Kind = iota

	// GRN is a goods receipt note, the vendor's confirmation of delivered
	// quantities, subject to admin approval.
	GRN

	// Invoice is the vendor's bill for a delivered order.
	Invoice
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "UNKNOWN",
		GRN:         "GRN",
		Invoice:     "INVOICE",
	}
}

// Validate checks that the Kind is GRN or Invoice.
func (k Kind) Validate() error {
	if k != GRN && k != Invoice {
		return errs.NewValueIsInvalidErrorWithCause("document kind",
			fmt.Errorf("%d is not a valid document kind", k))
	}
	return nil
}

// String returns the raw kind literal.
func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Status is the approval state of a GRN or invoice.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Raised means the vendor submitted the document and nobody acted yet.
	Raised

	// PendingApproval means the document is in an admin's approval queue.
	PendingApproval

	// Approved means an admin accepted the document. Nothing is pending.
	Approved

	// DocumentRejected means an admin declined the document.
	DocumentRejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:    "UNKNOWN",
		Raised:           "RAISED",
		PendingApproval:  "PENDING_APPROVAL",
		Approved:         "APPROVED",
		DocumentRejected: "REJECTED",
	}
}

// Validate checks that the Status is a known document status.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == UnknownStatus {
		return errs.NewValueIsInvalidErrorWithCause("document status",
			fmt.Errorf("%d is not a valid document status", s))
	}
	return nil
}

// String returns the raw status literal.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsPending reports whether the document still requires a human action.
// Only Raised and PendingApproval documents produce pending actions; an
// Approved document never does.
func (s Status) IsPending() bool {
	return s == Raised || s == PendingApproval
}

// LinkKeys is the set of keys a document may carry to associate itself with
// logical orders: a purchase-order number, a list of requisition numbers, or a
// direct order id. Any subset may be present; a document with no usable key
// simply links to nothing (malformed linkage degrades to absent, it never
// fails the read path).
type LinkKeys struct {
	poNumber  string
	prNumbers []string
	orderID   *kernel.UUID
}

// NewLinkKeys builds the linking key set. A nil orderID and empty strings are
// all acceptable; validation only rejects an orderID that is present but
// malformed.
func NewLinkKeys(poNumber string, prNumbers []string, orderID *kernel.UUID) (LinkKeys, error) {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return LinkKeys{}, err
		}
	}

	return LinkKeys{poNumber: poNumber, prNumbers: prNumbers, orderID: orderID}, nil
}

// PoNumber returns the purchase-order number key, empty when absent.
func (lk LinkKeys) PoNumber() string { return lk.poNumber }

// PrNumbers returns the requisition-number keys.
func (lk LinkKeys) PrNumbers() []string { return lk.prNumbers }

// OrderID returns the direct order id key, nil when absent.
func (lk LinkKeys) OrderID() *kernel.UUID { return lk.orderID }

// Document is a vendor-raised GRN or invoice. Documents associate with logical
// orders many-to-many through their link keys: one document may reference
// several requisition numbers, and one logical order may have several pending
// documents at once.
type Document struct {
	id        kernel.UUID
	kind      Kind
	status    Status
	companyID kernel.UUID
	keys      LinkKeys

	guard guard.ConstructorGuard
}

// NewDocument creates a freshly raised document.
func NewDocument(id kernel.UUID, kind Kind, companyID kernel.UUID, keys LinkKeys) (*Document, error) {
	return RestoreDocument(id, kind, Raised, companyID, keys)
}

// RestoreDocument reconstructs a Document from persistent storage.
func RestoreDocument(
	id kernel.UUID,
	kind Kind,
	status Status,
	companyID kernel.UUID,
	keys LinkKeys,
) (*Document, error) {
	d := &Document{
		keys:  keys,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setKind(kind),
		d.setStatus(status),
		d.setCompanyID(companyID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Document was created through a constructor.
func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID { return d.id }

// Kind returns GRN or Invoice.
func (d *Document) Kind() Kind { return d.kind }

// Status returns the approval status.
func (d *Document) Status() Status { return d.status }

// CompanyID returns the owning company's identifier.
func (d *Document) CompanyID() kernel.UUID { return d.companyID }

// Keys returns the linking key set.
func (d *Document) Keys() LinkKeys { return d.keys }

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}

func (d *Document) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Document) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	d.companyID = companyID
	return nil
}
