package services_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDocument(
	t *testing.T,
	kind document.Kind,
	status document.Status,
	poNumber string,
	prNumbers []string,
	orderID *kernel.UUID,
) *document.Document {
	t.Helper()
	keys, err := document.NewLinkKeys(poNumber, prNumbers, orderID)
	require.NoError(t, err)
	d, err := document.RestoreDocument(kernel.NewUUID(), kind, status, kernel.NewUUID(), keys)
	require.NoError(t, err)
	return d
}

func TestDocumentLinker_Link(t *testing.T) {
	aggregator := services.NewOrderAggregator()
	linker := services.NewDocumentLinker()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("should link by direct order id", func(t *testing.T) {
		order := restoreOrder(t, nil, requisition.POCreated, 400, now)
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{order})
		orderID := order.ID()
		grn := restoreDocument(t, document.GRN, document.Raised, "", nil, &orderID)

		linked := linker.Link(logicalOrders, []*document.Document{grn})

		require.Contains(t, linked, order.ID())
		assert.Len(t, linked[order.ID()].GRNs, 1)
		assert.Empty(t, linked[order.ID()].Invoices)
	})

	t.Run("should link by po number", func(t *testing.T) {
		order := restoreOrder(t, nil, requisition.POCreated, 400, now)
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{order})
		invoice := restoreDocument(
			t, document.Invoice, document.PendingApproval, order.PoNumber(), nil, nil)

		linked := linker.Link(logicalOrders, []*document.Document{invoice})

		require.Contains(t, linked, order.ID())
		assert.Len(t, linked[order.ID()].Invoices, 1)
	})

	t.Run("should link by pr number", func(t *testing.T) {
		order := restoreOrder(t, nil, requisition.POCreated, 400, now)
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{order})
		grn := restoreDocument(
			t, document.GRN, document.Raised, "", []string{"PR-9999", order.PrNumber()}, nil)

		linked := linker.Link(logicalOrders, []*document.Document{grn})

		require.Contains(t, linked, order.ID())
		assert.Len(t, linked[order.ID()].GRNs, 1)
	})

	t.Run("should link one document to several logical orders", func(t *testing.T) {
		first := restoreOrder(t, nil, requisition.POCreated, 400, now)
		second := restoreOrder(t, nil, requisition.POCreated, 200, now.Add(-time.Hour))
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{first, second})
		grn := restoreDocument(
			t, document.GRN, document.Raised, "",
			[]string{first.PrNumber(), second.PrNumber()}, nil)

		linked := linker.Link(logicalOrders, []*document.Document{grn})

		assert.Len(t, linked[first.ID()].GRNs, 1)
		assert.Len(t, linked[second.ID()].GRNs, 1)
	})

	t.Run("should de-duplicate document matched through two keys", func(t *testing.T) {
		order := restoreOrder(t, nil, requisition.POCreated, 400, now)
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{order})
		orderID := order.ID()
		grn := restoreDocument(
			t, document.GRN, document.Raised,
			order.PoNumber(), []string{order.PrNumber()}, &orderID)

		linked := linker.Link(logicalOrders, []*document.Document{grn})

		require.Contains(t, linked, order.ID())
		assert.Len(t, linked[order.ID()].GRNs, 1)
	})

	t.Run("should leave unmatched documents absent", func(t *testing.T) {
		order := restoreOrder(t, nil, requisition.POCreated, 400, now)
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{order})
		grn := restoreDocument(t, document.GRN, document.Raised, "PO-OTHER", nil, nil)

		linked := linker.Link(logicalOrders, []*document.Document{grn})

		assert.NotContains(t, linked, order.ID())
	})

	t.Run("should ignore nil documents", func(t *testing.T) {
		order := restoreOrder(t, nil, requisition.POCreated, 400, now)
		logicalOrders := aggregator.Aggregate([]*requisition.Requisition{order})

		linked := linker.Link(logicalOrders, []*document.Document{nil})

		assert.Empty(t, linked)
	})
}
