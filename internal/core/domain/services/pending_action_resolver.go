package services

import (
	"sort"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
)

// ActionKind identifies what kind of human action is pending on a logical order.
type ActionKind int

const (
	// UnknownActionKind is the zero value and is not a valid kind.
	UnknownActionKind ActionKind = iota

	// OrderActionKind is an approval pending on the order itself.
	OrderActionKind

	// GRNActionKind is an approval pending on a linked goods receipt note.
	GRNActionKind

	// InvoiceActionKind is an approval pending on a linked invoice.
	InvoiceActionKind
)

func actionKindStrings() map[ActionKind]string {
	return map[ActionKind]string{
		OrderActionKind:   "ORDER",
		GRNActionKind:     "GRN",
		InvoiceActionKind: "INVOICE",
	}
}

// String returns the raw kind literal, or empty for unknown values.
func (k ActionKind) String() string {
	return actionKindStrings()[k]
}

// Action is one outstanding human action. Lower priority means more urgent;
// the caller treats the first action as primary and the rest as overflow.
type Action struct {
	Kind     ActionKind
	EntityID kernel.UUID
	Priority float64
}

// CallerRole is the identity role of the caller requesting pending actions.
// It arrives as an explicit request-scoped parameter, never from ambient state.
type CallerRole string

const (
	// RoleCompanyAdmin may approve orders, GRNs, and invoices.
	RoleCompanyAdmin CallerRole = "COMPANY_ADMIN"

	// RoleLocationAdmin manages a single location; order approval is not offered.
	RoleLocationAdmin CallerRole = "LOCATION_ADMIN"

	// RoleVendor is a supplying vendor; approval actions are never offered.
	RoleVendor CallerRole = "VENDOR"
)

// Priority bands. GRN and invoice actions step by 0.1 within their band so
// multiple pending documents sort deterministically by discovery order without
// colliding with the fixed bands.
const (
	orderActionPriority       = 1.0
	grnActionBasePriority     = 2.0
	invoiceActionBasePriority = 3.0
	actionPriorityStep        = 0.1
)

// PendingActionResolver is a domain service that derives the priority-ordered
// list of outstanding human actions for a logical order. It is a pure function
// of current state: re-running it after any state change is idempotent and
// side-effect free.
type PendingActionResolver struct{}

// NewPendingActionResolver creates a new PendingActionResolver instance.
func NewPendingActionResolver() PendingActionResolver {
	return PendingActionResolver{}
}

// Resolve produces the pending actions for one logical order and its linked
// documents, sorted ascending by priority.
//
// Rules:
//   - An ORDER action at priority 1 is emitted iff the overall status is
//     PENDING_COMPANY_ADMIN_APPROVAL and the caller is a company admin.
//   - A GRN action at priority 2 + 0.1×index is emitted for every linked GRN
//     still pending approval, in discovery order.
//   - An INVOICE action at priority 3 + 0.1×index follows the same rule.
func (r PendingActionResolver) Resolve(
	lo LogicalOrder, linked LinkedDocuments, role CallerRole,
) []Action {
	var actions []Action

	if role == RoleCompanyAdmin &&
		lo.OverallStatus() == requisition.PendingCompanyAdminApproval {
		actions = append(actions, Action{
			Kind:     OrderActionKind,
			EntityID: lo.Key(),
			Priority: orderActionPriority,
		})
	}

	pendingIndex := 0
	for _, grn := range linked.GRNs {
		if grn == nil || !grn.Status().IsPending() {
			continue
		}
		actions = append(actions, Action{
			Kind:     GRNActionKind,
			EntityID: grn.ID(),
			Priority: grnActionBasePriority + actionPriorityStep*float64(pendingIndex),
		})
		pendingIndex++
	}

	pendingIndex = 0
	for _, invoice := range linked.Invoices {
		if invoice == nil || !invoice.Status().IsPending() {
			continue
		}
		actions = append(actions, Action{
			Kind:     InvoiceActionKind,
			EntityID: invoice.ID(),
			Priority: invoiceActionBasePriority + actionPriorityStep*float64(pendingIndex),
		})
		pendingIndex++
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})

	return actions
}
