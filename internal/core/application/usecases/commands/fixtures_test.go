package commands_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/require"
)

var testDispatchDate = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func testPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pincode, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pincode
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(
		"12 MG Road", "Bengaluru", "Karnataka", testPincode(t, "110001"))
	require.NoError(t, err)
	return address
}

func testDimensions(t *testing.T) *shipment.Dimensions {
	t.Helper()
	dims, err := shipment.NewDimensions(40, 30, 20, 0)
	require.NoError(t, err)
	return &dims
}

func mustParcel(t *testing.T) shipment.Parcel {
	t.Helper()
	parcel, err := shipment.ResolveParcel(nil, testDimensions(t))
	require.NoError(t, err)
	return parcel
}

func testRequisition(t *testing.T, status requisition.Status) *requisition.Requisition {
	t.Helper()
	item, err := requisition.NewLineItem("SKU-001", "M", 2, 450)
	require.NoError(t, err)
	r, err := requisition.RestoreRequisition(
		kernel.NewUUID(), nil, kernel.NewUUID(), kernel.NewUUID(),
		"PR-1001", "PO-2001", []requisition.LineItem{item}, status,
		testAddress(t), 900, testDispatchDate,
	)
	require.NoError(t, err)
	return r
}

func openShipmentFor(t *testing.T, req *requisition.Requisition) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewManualShipment(
		kernel.NewUUID(), req.ID(), req.VendorID(),
		mustParcel(t), shipment.Courier, "AWB-1", testDispatchDate)
	require.NoError(t, err)
	return s
}

func testCourierRouting(t *testing.T, vendorID, companyID kernel.UUID) *shipping.CourierRouting {
	t.Helper()
	routing, err := shipping.NewCourierRouting(vendorID, companyID, "SHIPROCKET", "DLV", "XPB")
	require.NoError(t, err)
	return routing
}

func testActiveWarehouse(t *testing.T, companyID kernel.UUID) *shipping.Warehouse {
	t.Helper()
	w, err := shipping.NewWarehouse(
		kernel.NewUUID(), companyID, "Bengaluru DC", testPincode(t, "560001"), true, true)
	require.NoError(t, err)
	return w
}
