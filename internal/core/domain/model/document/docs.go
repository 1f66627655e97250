// Package document models vendor-raised goods receipt notes and invoices and
// the multi-key scheme (PO number, PR numbers, direct order id) that links them
// to logical orders. Documents only block a logical order while their status is
// pending; the join itself is computed per read by the document linker service.
package document
