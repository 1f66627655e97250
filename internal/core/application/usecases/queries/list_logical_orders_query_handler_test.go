package queries_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const listingCacheTTL = 2 * time.Minute

func testPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pincode, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pincode
}

func testAddress(t *testing.T, city string) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(
		"12 MG Road", city, "Karnataka", testPincode(t, "110001"))
	require.NoError(t, err)
	return address
}

func restoreListingOrder(
	t *testing.T, companyID kernel.UUID, prNumber string, city string, status requisition.Status,
) *requisition.Requisition {
	t.Helper()
	item, err := requisition.NewLineItem("SKU-001", "M", 2, 450)
	require.NoError(t, err)
	r, err := requisition.RestoreRequisition(
		kernel.NewUUID(), nil, companyID, kernel.NewUUID(),
		prNumber, "PO-"+prNumber, []requisition.LineItem{item}, status,
		testAddress(t, city), 900, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func pendingGRNFor(t *testing.T, companyID kernel.UUID, orderID kernel.UUID) *document.Document {
	t.Helper()
	keys, err := document.NewLinkKeys("", nil, &orderID)
	require.NoError(t, err)
	doc, err := document.NewDocument(kernel.NewUUID(), document.GRN, companyID, keys)
	require.NoError(t, err)
	return doc
}

func mustListQuery(
	t *testing.T, companyID kernel.UUID, role services.CallerRole,
	statusFilter, location, search string,
) queries.ListLogicalOrdersQuery {
	t.Helper()
	query, err := queries.NewListLogicalOrdersQuery(companyID, role, statusFilter, location, search)
	require.NoError(t, err)
	return query
}

func TestNewListLogicalOrdersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewListLogicalOrdersQuery(
			kernel.NewUUID(), services.RoleCompanyAdmin, "PO_CREATED", "Bengaluru", "SKU")
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, "PO_CREATED", query.StatusFilter())
	})

	t.Run("unknown_role_is_rejected", func(t *testing.T) {
		_, err := queries.NewListLogicalOrdersQuery(
			kernel.NewUUID(), services.CallerRole("AUDITOR"), "", "", "")
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.ListLogicalOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrListLogicalOrdersQueryIsNotConstructed)
	})
}

func TestListLogicalOrdersQueryHandler_Handle(t *testing.T) {
	companyID := kernel.NewUUID()

	t.Run("CacheMissListsAndCaches", func(t *testing.T) {
		order := restoreListingOrder(t, companyID, "PR-1001", "Bengaluru", requisition.POCreated)

		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{order}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, document.GRN).
			Return([]*document.Document{pendingGRNFor(t, companyID, order.ID())}, nil)
		documents.On("GetPendingForCompany", mock.Anything, companyID, document.Invoice).
			Return([]*document.Document{}, nil)

		cache := &MockOrderListCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(nil, ports.ErrCacheMiss)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, listingCacheTTL).Return(nil)

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, cache, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleCompanyAdmin, "", "", ""))
		require.NoError(t, err)
		require.Len(t, responses, 1)

		assert.Equal(t, order.ID().String(), responses[0].ID)
		assert.Equal(t, "PO_CREATED", responses[0].OverallStatus)
		assert.False(t, responses[0].IsSplit)
		require.NotNil(t, responses[0].PrimaryAction)
		assert.Equal(t, "GRN", responses[0].PrimaryAction.Kind)
		assert.Empty(t, responses[0].SecondaryActions)

		cache.AssertExpectations(t)
		requisitions.AssertExpectations(t)
	})

	t.Run("CacheHitSkipsRepositories", func(t *testing.T) {
		cached := []queries.LogicalOrderResponse{{ID: kernel.NewUUID().String()}}
		payload, err := json.Marshal(cached)
		require.NoError(t, err)

		cache := &MockOrderListCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(payload, nil)

		requisitions := &MockRequisitionRepository{}
		documents := &MockDocumentRepository{}

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, cache, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleVendor, "", "", ""))
		require.NoError(t, err)
		assert.Equal(t, cached, responses)

		requisitions.AssertNotCalled(t, "GetAllForCompany", mock.Anything, mock.Anything)
	})

	t.Run("CacheFailureDegradesToUncachedRead", func(t *testing.T) {
		order := restoreListingOrder(t, companyID, "PR-1002", "Pune", requisition.POCreated)

		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{order}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, mock.Anything).
			Return([]*document.Document{}, nil)

		cache := &MockOrderListCache{}
		cache.On("Get", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, cache, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleVendor, "", "", ""))
		require.NoError(t, err)
		assert.Len(t, responses, 1)
	})

	t.Run("NilCacheIsAllowed", func(t *testing.T) {
		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, mock.Anything).
			Return([]*document.Document{}, nil)

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, nil, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleVendor, "", "", ""))
		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("StatusFilterMatchesOverallStatus", func(t *testing.T) {
		matching := restoreListingOrder(t, companyID, "PR-2001", "Bengaluru", requisition.POCreated)
		other := restoreListingOrder(t, companyID, "PR-2002", "Bengaluru", requisition.InShipment)

		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{matching, other}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, mock.Anything).
			Return([]*document.Document{}, nil)

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, nil, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleVendor, "PO_CREATED", "", ""))
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, matching.ID().String(), responses[0].ID)
	})

	t.Run("LocationFilterMatchesDestinationCity", func(t *testing.T) {
		pune := restoreListingOrder(t, companyID, "PR-3001", "Pune", requisition.POCreated)
		bengaluru := restoreListingOrder(t, companyID, "PR-3002", "Bengaluru", requisition.POCreated)

		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{pune, bengaluru}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, mock.Anything).
			Return([]*document.Document{}, nil)

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, nil, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleVendor, "", "pune", ""))
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, pune.ID().String(), responses[0].ID)
	})

	t.Run("SearchMatchesPrNumber", func(t *testing.T) {
		matching := restoreListingOrder(t, companyID, "PR-4001", "Pune", requisition.POCreated)
		other := restoreListingOrder(t, companyID, "PR-9999", "Pune", requisition.POCreated)

		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{matching, other}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, mock.Anything).
			Return([]*document.Document{}, nil)

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, nil, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleVendor, "", "", "pr-4001"))
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, matching.ID().String(), responses[0].ID)
	})

	t.Run("PrimaryAndSecondaryActionsSplit", func(t *testing.T) {
		order := restoreListingOrder(t, companyID, "PR-5001", "Pune", requisition.POCreated)

		requisitions := &MockRequisitionRepository{}
		requisitions.On("GetAllForCompany", mock.Anything, companyID).
			Return([]*requisition.Requisition{order}, nil)

		documents := &MockDocumentRepository{}
		documents.On("GetPendingForCompany", mock.Anything, companyID, document.GRN).
			Return([]*document.Document{
				pendingGRNFor(t, companyID, order.ID()),
				pendingGRNFor(t, companyID, order.ID()),
			}, nil)
		documents.On("GetPendingForCompany", mock.Anything, companyID, document.Invoice).
			Return([]*document.Document{}, nil)

		handler := queries.NewListLogicalOrdersQueryHandler(
			requisitions, documents, nil, listingCacheTTL, slog.Default())

		responses, err := handler.Handle(t.Context(),
			mustListQuery(t, companyID, services.RoleCompanyAdmin, "", "", ""))
		require.NoError(t, err)
		require.Len(t, responses, 1)

		require.NotNil(t, responses[0].PrimaryAction)
		assert.InDelta(t, 2.0, responses[0].PrimaryAction.Priority, 0.001)
		require.Len(t, responses[0].SecondaryActions, 1)
		assert.InDelta(t, 2.1, responses[0].SecondaryActions[0].Priority, 0.001)
	})

	t.Run("InvalidQueryIsRejected", func(t *testing.T) {
		handler := queries.NewListLogicalOrdersQueryHandler(
			&MockRequisitionRepository{}, &MockDocumentRepository{}, nil,
			listingCacheTTL, slog.Default())

		var query queries.ListLogicalOrdersQuery
		_, err := handler.Handle(t.Context(), query)
		assert.ErrorIs(t, err, queries.ErrListLogicalOrdersQueryIsNotConstructed)
	})
}

func TestListLogicalOrdersQueryHandler_CacheKeyDistinguishesFilterVariants(t *testing.T) {
	companyID := kernel.NewUUID()

	requisitions := &MockRequisitionRepository{}
	requisitions.On("GetAllForCompany", mock.Anything, companyID).
		Return([]*requisition.Requisition{}, nil)

	documents := &MockDocumentRepository{}
	documents.On("GetPendingForCompany", mock.Anything, companyID, document.GRN).
		Return([]*document.Document{}, nil)
	documents.On("GetPendingForCompany", mock.Anything, companyID, document.Invoice).
		Return([]*document.Document{}, nil)

	var keys []string
	cache := &MockOrderListCache{}
	cache.On("Get", mock.Anything, mock.Anything).Return(nil, ports.ErrCacheMiss)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, listingCacheTTL).
		Run(func(args mock.Arguments) {
			keys = append(keys, args.String(1))
		}).Return(nil)

	handler := queries.NewListLogicalOrdersQueryHandler(
		requisitions, documents, cache, listingCacheTTL, slog.Default())

	// Raw ":"-joined keys would make these two filter combinations identical.
	_, err := handler.Handle(t.Context(),
		mustListQuery(t, companyID, services.RoleVendor, "a:b", "c", ""))
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(),
		mustListQuery(t, companyID, services.RoleVendor, "a", "b:c", ""))
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	assert.True(t, strings.HasPrefix(keys[0], companyID.String()))
	assert.True(t, strings.HasPrefix(keys[1], companyID.String()))
}
