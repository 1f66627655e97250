package queries_test

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/mock"
)

type MockRequisitionRepository struct{ mock.Mock }

func (m *MockRequisitionRepository) Add(ctx context.Context, r *requisition.Requisition) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Update(ctx context.Context, r *requisition.Requisition) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*requisition.Requisition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requisition.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) GetAllForCompany(
	ctx context.Context, companyID kernel.UUID,
) ([]*requisition.Requisition, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requisition.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) GetAllForVendor(
	ctx context.Context, vendorID kernel.UUID,
) ([]*requisition.Requisition, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requisition.Requisition), args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetPendingForCompany(
	ctx context.Context, companyID kernel.UUID, kind document.Kind,
) ([]*document.Document, error) {
	args := m.Called(ctx, companyID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*document.Document), args.Error(1)
}

type MockLogisticsRepository struct{ mock.Mock }

func (m *MockLogisticsRepository) GetCourierRouting(
	ctx context.Context, vendorID, companyID kernel.UUID,
) (*shipping.CourierRouting, error) {
	args := m.Called(ctx, vendorID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.CourierRouting), args.Error(1)
}

func (m *MockLogisticsRepository) GetWarehouses(
	ctx context.Context, vendorID kernel.UUID,
) ([]*shipping.Warehouse, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipping.Warehouse), args.Error(1)
}

func (m *MockLogisticsRepository) GetPackageTemplate(
	ctx context.Context, id kernel.UUID,
) (*shipment.PackageTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.PackageTemplate), args.Error(1)
}

func (m *MockLogisticsRepository) GetCompanyShippingMode(
	ctx context.Context, companyID kernel.UUID,
) (shipping.Mode, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(shipping.Mode), args.Error(1)
}

type MockOrderListCache struct{ mock.Mock }

func (m *MockOrderListCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockOrderListCache) Set(
	ctx context.Context, key string, payload []byte, ttl time.Duration,
) error {
	args := m.Called(ctx, key, payload, ttl)
	return args.Error(0)
}

func (m *MockOrderListCache) Invalidate(ctx context.Context, companyKey string) error {
	args := m.Called(ctx, companyKey)
	return args.Error(0)
}
