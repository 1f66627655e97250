package requisition

import (
	"fmt"
	"math"

	"orderflow/internal/pkg/errs"
)

// Status represents the workflow state of a requisition as it moves through
// approval, purchase-order linkage, and shipment.
//
// Statuses form a fixed, totally-ordered lattice used by the order aggregator
// to pick a split requisition's bottleneck: the child with the minimum rank
// (the most-behind vendor) determines the group's displayed progress. The
// ordering is a lookup table, never string comparison at call sites.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Rejected is the generic rejection state.
	Rejected

	// RejectedBySiteAdmin means the site (location) admin declined the requisition.
	RejectedBySiteAdmin

	// RejectedByCompanyAdmin means the company admin declined the requisition.
	RejectedByCompanyAdmin

	// PendingSiteAdminApproval is the initial state of a newly raised requisition.
	PendingSiteAdminApproval

	// SiteAdminApproved means the site admin approved; company approval is next.
	SiteAdminApproved

	// PendingCompanyAdminApproval means the requisition awaits company admin action.
	PendingCompanyAdminApproval

	// CompanyAdminApproved means both approval gates have passed.
	CompanyAdminApproved

	// LinkedToPO means the requisition has been attached to a purchase order.
	LinkedToPO

	// POCreated means the purchase order has been issued to the vendor.
	POCreated

	// InShipment means a shipment exists for the requisition.
	InShipment

	// PartiallyDelivered means some line items have been received.
	PartiallyDelivered

	// FullyDelivered means all line items have been received. Final state.
	FullyDelivered
)

// RankUnknown is the rank assigned to statuses outside the lattice.
// It is never chosen as a bottleneck.
const RankUnknown = math.MaxInt

// statusRanks is the lattice: a total order over workflow statuses.
func statusRanks() map[Status]int {
	return map[Status]int{
		Rejected:                    0,
		RejectedBySiteAdmin:         1,
		RejectedByCompanyAdmin:      2,
		PendingSiteAdminApproval:    3,
		SiteAdminApproved:           4,
		PendingCompanyAdminApproval: 5,
		CompanyAdminApproved:        6,
		LinkedToPO:                  7,
		POCreated:                   8,
		InShipment:                  9,
		PartiallyDelivered:          10,
		FullyDelivered:              11,
	}
}

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                     "UNKNOWN",
		Rejected:                    "REJECTED",
		RejectedBySiteAdmin:         "REJECTED_BY_SITE_ADMIN",
		RejectedByCompanyAdmin:      "REJECTED_BY_COMPANY_ADMIN",
		PendingSiteAdminApproval:    "PENDING_SITE_ADMIN_APPROVAL",
		SiteAdminApproved:           "SITE_ADMIN_APPROVED",
		PendingCompanyAdminApproval: "PENDING_COMPANY_ADMIN_APPROVAL",
		CompanyAdminApproved:        "COMPANY_ADMIN_APPROVED",
		LinkedToPO:                  "LINKED_TO_PO",
		POCreated:                   "PO_CREATED",
		InShipment:                  "IN_SHIPMENT",
		PartiallyDelivered:          "PARTIALLY_DELIVERED",
		FullyDelivered:              "FULLY_DELIVERED",
	}
}

// Rank returns the status position in the workflow lattice.
// Statuses outside the lattice receive RankUnknown so they are never selected
// as a group's bottleneck.
func (s Status) Rank() int {
	if rank, ok := statusRanks()[s]; ok {
		return rank
	}
	return RankUnknown
}

// Validate checks that the Status is a member of the lattice.
func (s Status) Validate() error {
	if _, ok := statusRanks()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid requisition status", s))
	}
	return nil
}

// String returns the raw status literal used for display and persistence of
// labels. Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsRejected reports whether the status is one of the rejection states.
func (s Status) IsRejected() bool {
	return s == Rejected || s == RejectedBySiteAdmin || s == RejectedByCompanyAdmin
}

// ValidateShip checks that a shipment may be created from the current status.
// Rejected requisitions and requisitions already in or past shipment cannot
// enter shipment again.
func (s Status) ValidateShip() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsRejected() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s cannot enter shipment", s.String()))
	}
	if s.Rank() >= InShipment.Rank() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is already in or past shipment", s.String()))
	}
	return nil
}

// Ship transitions the status to InShipment.
//
// Valid from any non-rejected status before InShipment; the approval screens own
// the earlier transitions, the fulfillment engine only performs this one.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateShip(); err != nil {
		return 0, err
	}
	return InShipment, nil
}
