package requisition_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	pin, err := kernel.NewPincode("560001")
	require.NoError(t, err)
	addr, err := kernel.NewAddress("12 MG Road", "Bengaluru", "Karnataka", pin)
	require.NoError(t, err)
	return addr
}

func testItems(t *testing.T) []requisition.LineItem {
	t.Helper()
	item, err := requisition.NewLineItem("SKU-100", "L", 2, 450)
	require.NoError(t, err)
	return []requisition.LineItem{item}
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item, err := requisition.NewLineItem("SKU-1", "M", 3, 100)

		require.NoError(t, err)
		assert.Equal(t, "SKU-1", item.ProductID())
		assert.Equal(t, "M", item.Size())
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 100.0, item.Price(), 0.001)
	})

	t.Run("missing_product", func(t *testing.T) {
		_, err := requisition.NewLineItem("", "M", 3, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		_, err := requisition.NewLineItem("SKU-1", "M", 0, 100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_price", func(t *testing.T) {
		_, err := requisition.NewLineItem("SKU-1", "M", 1, -5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewRequisition(t *testing.T) {
	id := kernel.NewUUID()
	companyID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	orderDate := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	req, err := requisition.NewRequisition(
		id, nil, companyID, vendorID, "PR-1001", testItems(t), testAddress(t), 900, orderDate)

	require.NoError(t, err)
	require.NoError(t, req.Validate())
	assert.True(t, id.IsEqual(req.ID()))
	assert.Nil(t, req.ParentID())
	assert.Equal(t, requisition.PendingSiteAdminApproval, req.Status())
	assert.Equal(t, "PR-1001", req.PrNumber())
	assert.Empty(t, req.PoNumber())
	assert.InDelta(t, 900.0, req.Total(), 0.001)
	assert.Equal(t, orderDate, req.OrderDate())
}

func TestNewRequisition_SplitSlice(t *testing.T) {
	parentID := kernel.NewUUID()

	req, err := requisition.NewRequisition(
		kernel.NewUUID(), &parentID, kernel.NewUUID(), kernel.NewUUID(),
		"PR-1001", testItems(t), testAddress(t), 900, time.Now())

	require.NoError(t, err)
	require.NotNil(t, req.ParentID())
	assert.True(t, parentID.IsEqual(*req.ParentID()))
}

func TestNewRequisition_InvalidInput(t *testing.T) {
	id := kernel.NewUUID()
	companyID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	t.Run("self_parent", func(t *testing.T) {
		_, err := requisition.NewRequisition(
			id, &id, companyID, vendorID, "PR-1", testItems(t), testAddress(t), 10, time.Now())
		require.Error(t, err)
	})

	t.Run("missing_pr_number", func(t *testing.T) {
		_, err := requisition.NewRequisition(
			id, nil, companyID, vendorID, "", testItems(t), testAddress(t), 10, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no_items", func(t *testing.T) {
		_, err := requisition.NewRequisition(
			id, nil, companyID, vendorID, "PR-1", nil, testAddress(t), 10, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_total", func(t *testing.T) {
		_, err := requisition.NewRequisition(
			id, nil, companyID, vendorID, "PR-1", testItems(t), testAddress(t), -10, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := requisition.NewRequisition(
			zero, nil, companyID, vendorID, "PR-1", testItems(t), testAddress(t), 10, time.Now())
		require.Error(t, err)
	})
}

func TestRestoreRequisition_PreservesStatusAndPoNumber(t *testing.T) {
	req, err := requisition.RestoreRequisition(
		kernel.NewUUID(), nil, kernel.NewUUID(), kernel.NewUUID(),
		"PR-7", "PO-7", testItems(t), requisition.POCreated, testAddress(t), 450, time.Now())

	require.NoError(t, err)
	assert.Equal(t, requisition.POCreated, req.Status())
	assert.Equal(t, "PO-7", req.PoNumber())
}

func TestRequisition_Ship(t *testing.T) {
	t.Run("advances_to_in_shipment", func(t *testing.T) {
		req, err := requisition.RestoreRequisition(
			kernel.NewUUID(), nil, kernel.NewUUID(), kernel.NewUUID(),
			"PR-7", "PO-7", testItems(t), requisition.POCreated, testAddress(t), 450, time.Now())
		require.NoError(t, err)

		require.NoError(t, req.Ship())
		assert.Equal(t, requisition.InShipment, req.Status())
	})

	t.Run("cannot_ship_twice", func(t *testing.T) {
		req, err := requisition.RestoreRequisition(
			kernel.NewUUID(), nil, kernel.NewUUID(), kernel.NewUUID(),
			"PR-7", "PO-7", testItems(t), requisition.InShipment, testAddress(t), 450, time.Now())
		require.NoError(t, err)

		err = req.Ship()
		require.Error(t, err)
		assert.Equal(t, requisition.InShipment, req.Status())
	})
}

func TestRequisition_Validate_NotConstructed(t *testing.T) {
	var req requisition.Requisition

	err := req.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, requisition.ErrRequisitionIsNotConstructed)
}
