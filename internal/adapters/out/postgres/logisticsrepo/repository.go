package logisticsrepo

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/model/shipping"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLogisticsRepository implements LogisticsRepository using GORM.
// All operations are reads; the shipping configuration is maintained by the
// administration surface, not by the fulfillment core.
type GormLogisticsRepository struct {
	db *gorm.DB
}

// NewGormLogisticsRepository creates a new GORM logistics repository.
func NewGormLogisticsRepository(db *gorm.DB) *GormLogisticsRepository {
	return &GormLogisticsRepository{db: db}
}

// GetCourierRouting retrieves the courier routing for a (vendor, company) pair.
func (r *GormLogisticsRepository) GetCourierRouting(
	ctx context.Context, vendorID, companyID kernel.UUID,
) (*shipping.CourierRouting, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dto CourierRoutingDTO
	err := r.db.WithContext(ctx).First(&dto,
		"vendor_id = ? AND company_id = ?", vendorID.Bytes(), companyID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier routing",
				fmt.Sprintf("%s/%s", vendorID.String(), companyID.String()))
		}
		return nil, err
	}

	return routingToDomain(dto)
}

// GetWarehouses retrieves every warehouse of a company, active or not.
func (r *GormLogisticsRepository) GetWarehouses(
	ctx context.Context, companyID kernel.UUID,
) ([]*shipping.Warehouse, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WarehouseDTO
	err := r.db.WithContext(ctx).Find(&dtos, "company_id = ?", companyID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	warehouses := make([]*shipping.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		warehouse, domainErr := warehouseToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		warehouses = append(warehouses, warehouse)
	}

	return warehouses, nil
}

// GetPackageTemplate retrieves a package template by ID.
func (r *GormLogisticsRepository) GetPackageTemplate(
	ctx context.Context, id kernel.UUID,
) (*shipment.PackageTemplate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageTemplateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package template", id.String())
		}
		return nil, err
	}

	return templateToDomain(dto)
}

// GetCompanyShippingMode retrieves the company's configured shipping mode.
// Companies without an explicit setting default to manual.
func (r *GormLogisticsRepository) GetCompanyShippingMode(
	ctx context.Context, companyID kernel.UUID,
) (shipping.Mode, error) {
	if err := companyID.Validate(); err != nil {
		return shipping.UnknownMode, err
	}

	var dto ShippingSettingDTO
	err := r.db.WithContext(ctx).First(&dto, "company_id = ?", companyID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shipping.Manual, nil
		}
		return shipping.UnknownMode, err
	}

	return shipping.Mode(dto.Mode), nil
}
