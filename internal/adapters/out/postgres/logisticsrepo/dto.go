// Package logisticsrepo provides read access to administrator-maintained
// shipping configuration: courier routings, warehouses, package templates,
// and per-company shipping modes.
package logisticsrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/model/shipping"

	"github.com/google/uuid"
)

// CourierRoutingDTO represents the routing row for a (vendor, company) pair.
type CourierRoutingDTO struct {
	VendorID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderCode     string
	PrimaryCourier   string
	SecondaryCourier string
}

// TableName specifies the database table name for courier routings.
func (CourierRoutingDTO) TableName() string {
	return "courier_routings"
}

// WarehouseDTO represents a company warehouse row.
type WarehouseDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Pincode   string `gorm:"type:varchar(6)"`
	IsPrimary bool
	IsActive  bool
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// PackageTemplateDTO represents a reusable parcel definition row.
type PackageTemplateDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Length       float64
	Breadth      float64
	Height       float64
	Divisor      float64
	DeadWeightKg float64
}

// TableName specifies the database table name for package templates.
func (PackageTemplateDTO) TableName() string {
	return "package_templates"
}

// ShippingSettingDTO represents a company's configured shipping mode.
// Companies without a row default to manual shipping.
type ShippingSettingDTO struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Mode      int
}

// TableName specifies the database table name for shipping settings.
func (ShippingSettingDTO) TableName() string {
	return "company_shipping_settings"
}

func routingToDomain(dto CourierRoutingDTO) (*shipping.CourierRouting, error) {
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	return shipping.NewCourierRouting(
		vendorID, companyID, dto.ProviderCode, dto.PrimaryCourier, dto.SecondaryCourier)
}

func warehouseToDomain(dto WarehouseDTO) (*shipping.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}

	return shipping.NewWarehouse(id, companyID, dto.Name, pincode, dto.IsPrimary, dto.IsActive)
}

func templateToDomain(dto PackageTemplateDTO) (*shipment.PackageTemplate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dims, err := shipment.NewDimensions(dto.Length, dto.Breadth, dto.Height, dto.Divisor)
	if err != nil {
		return nil, err
	}

	return shipment.NewPackageTemplate(id, dto.Name, dims, dto.DeadWeightKg)
}
