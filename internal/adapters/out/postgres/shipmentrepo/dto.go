// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The requisition reference and status are indexed for the
// open-shipment conflict check; mode and status together serve the tracking
// job's poll of open API shipments.
type ShipmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequisitionID uuid.UUID `gorm:"type:uuid;index"`
	VendorID      uuid.UUID `gorm:"type:uuid;index"`
	Mode          int       `gorm:"index"`
	Status        int       `gorm:"index"`
	Transport     int
	AWB           string        `gorm:"column:awb"`
	ProviderCode  string
	CourierCode   string
	TrackingRef   string        `gorm:"index"`
	RawResponse   string        `gorm:"type:text"`
	Parcel        ParcelDTO     `gorm:"embedded;embeddedPrefix:parcel_"`
	DispatchDate  time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ParcelDTO represents the embedded resolved parcel within the shipment table.
// The template reference is kept for traceability; dimensions and weights are
// denormalized so the shipment row stands on its own.
type ParcelDTO struct {
	TemplateID   *uuid.UUID `gorm:"type:uuid"`
	Length       float64
	Breadth      float64
	Height       float64
	Divisor      float64
	DeadWeightKg float64
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	parcel := aggregate.Parcel()

	var templateID *uuid.UUID
	if id := parcel.TemplateID(); id != nil {
		raw := id.Bytes()
		templateID = &raw
	}

	dims := parcel.Dimensions()

	return ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		RequisitionID: aggregate.RequisitionID().Bytes(),
		VendorID:      aggregate.VendorID().Bytes(),
		Mode:          int(aggregate.Mode()),
		Status:        int(aggregate.Status()),
		Transport:     int(aggregate.Transport()),
		AWB:           aggregate.AWB(),
		ProviderCode:  aggregate.ProviderCode(),
		CourierCode:   aggregate.CourierCode(),
		TrackingRef:   aggregate.TrackingRef(),
		RawResponse:   aggregate.RawResponse(),
		Parcel: ParcelDTO{
			TemplateID:   templateID,
			Length:       dims.Length(),
			Breadth:      dims.Breadth(),
			Height:       dims.Height(),
			Divisor:      dims.Divisor(),
			DeadWeightKg: parcel.DeadWeightKg(),
		},
		DispatchDate: aggregate.DispatchDate(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requisitionID, err := kernel.UUIDFromBytes(dto.RequisitionID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var templateID *kernel.UUID
	if dto.Parcel.TemplateID != nil {
		tID, templateErr := kernel.UUIDFromBytes((*dto.Parcel.TemplateID)[:])
		if templateErr != nil {
			return nil, templateErr
		}
		templateID = &tID
	}

	dims, err := shipment.NewDimensions(
		dto.Parcel.Length, dto.Parcel.Breadth, dto.Parcel.Height, dto.Parcel.Divisor)
	if err != nil {
		return nil, err
	}

	parcel, err := shipment.RestoreParcel(templateID, dims, dto.Parcel.DeadWeightKg)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, requisitionID, vendorID,
		shipment.Mode(dto.Mode), parcel, shipment.Status(dto.Status),
		shipment.TransportMode(dto.Transport),
		dto.AWB, dto.ProviderCode, dto.CourierCode, dto.TrackingRef, dto.RawResponse,
		dto.DispatchDate,
	)
}
