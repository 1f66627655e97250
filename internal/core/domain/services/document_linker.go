package services

import (
	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"
)

// LinkedDocuments holds the GRNs and invoices associated with one logical
// order, in discovery order.
type LinkedDocuments struct {
	GRNs     []*document.Document
	Invoices []*document.Document
}

// DocumentLinker is a domain service that joins GRNs and invoices to logical
// orders through their overlapping link keys. The matchers are applied in a
// fixed order: direct order id, then purchase-order number, then requisition
// number. A document matched through two keys is linked once, de-duplicated by
// its id. Malformed linkage degrades to absent; the join never errors.
type DocumentLinker struct{}

// NewDocumentLinker creates a new DocumentLinker instance.
func NewDocumentLinker() DocumentLinker {
	return DocumentLinker{}
}

// Link builds the multi-key join once per read, producing the linked documents
// for every logical-order key. Keys with no linked documents are absent from
// the map.
func (l DocumentLinker) Link(
	logicalOrders []LogicalOrder, docs []*document.Document,
) map[kernel.UUID]LinkedDocuments {
	result := make(map[kernel.UUID]LinkedDocuments)
	linked := make(map[kernel.UUID]map[kernel.UUID]bool)

	attach := func(lo LogicalOrder, doc *document.Document) {
		seen := linked[lo.Key()]
		if seen == nil {
			seen = make(map[kernel.UUID]bool)
			linked[lo.Key()] = seen
		}
		if seen[doc.ID()] {
			return
		}
		seen[doc.ID()] = true

		entry := result[lo.Key()]
		switch doc.Kind() {
		case document.GRN:
			entry.GRNs = append(entry.GRNs, doc)
		case document.Invoice:
			entry.Invoices = append(entry.Invoices, doc)
		default:
			return
		}
		result[lo.Key()] = entry
	}

	for _, doc := range docs {
		if doc == nil || doc.Validate() != nil {
			continue
		}
		for _, lo := range logicalOrders {
			if matches(lo, doc) {
				attach(lo, doc)
			}
		}
	}

	return result
}

// matches applies the link-key matchers in their fixed order.
func matches(lo LogicalOrder, doc *document.Document) bool {
	return matchesByOrderID(lo, doc) ||
		matchesByPoNumber(lo, doc) ||
		matchesByPrNumber(lo, doc)
}

func matchesByOrderID(lo LogicalOrder, doc *document.Document) bool {
	orderID := doc.Keys().OrderID()
	if orderID == nil {
		return false
	}
	if lo.Key().IsEqual(*orderID) {
		return true
	}
	for _, member := range lo.Orders() {
		if member.ID().IsEqual(*orderID) {
			return true
		}
	}
	return false
}

func matchesByPoNumber(lo LogicalOrder, doc *document.Document) bool {
	poNumber := doc.Keys().PoNumber()
	if poNumber == "" {
		return false
	}
	for _, member := range lo.Orders() {
		if member.PoNumber() == poNumber {
			return true
		}
	}
	return false
}

func matchesByPrNumber(lo LogicalOrder, doc *document.Document) bool {
	for _, prNumber := range doc.Keys().PrNumbers() {
		if prNumber == "" {
			continue
		}
		for _, member := range lo.Orders() {
			if member.PrNumber() == prNumber {
				return true
			}
		}
	}
	return false
}
