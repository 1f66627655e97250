// Package requisitionrepo provides data transfer objects and mapping functions
// for requisition persistence. This package implements the repository pattern
// for the requisition domain aggregate, handling the conversion between domain
// entities and database representations.
package requisitionrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"

	"github.com/google/uuid"
)

// RequisitionDTO represents the database structure for persisting requisition
// aggregates. The parent reference and status are indexed for the listing and
// shipment-eligibility queries.
type RequisitionDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;index"`
	VendorID    uuid.UUID  `gorm:"type:uuid;index"`
	PrNumber    string     `gorm:"index"`
	PoNumber    string     `gorm:"index"`
	Status      int        `gorm:"index"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Total       float64
	OrderDate   time.Time

	Items []LineItemDTO `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for requisition entities.
func (RequisitionDTO) TableName() string {
	return "requisitions"
}

// AddressDTO represents the embedded delivery address within the requisition table.
type AddressDTO struct {
	Line1   string
	City    string `gorm:"index"`
	State   string
	Pincode string `gorm:"type:varchar(6)"`
}

// LineItemDTO represents one ordered product line of a requisition.
type LineItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	RequisitionID uuid.UUID `gorm:"type:uuid;index"`
	ProductID     string
	Size          string
	Quantity      int
	Price         float64
}

// TableName specifies the database table name for requisition line items.
func (LineItemDTO) TableName() string {
	return "requisition_items"
}

// fromDomain converts a requisition domain aggregate to its database representation.
func fromDomain(aggregate *requisition.Requisition) RequisitionDTO {
	var parentID *uuid.UUID
	if id := aggregate.ParentID(); id != nil {
		raw := id.Bytes()
		parentID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			RequisitionID: aggregate.ID().Bytes(),
			ProductID:     item.ProductID(),
			Size:          item.Size(),
			Quantity:      item.Quantity(),
			Price:         item.Price(),
		})
	}

	destination := aggregate.Destination()

	return RequisitionDTO{
		ID:        aggregate.ID().Bytes(),
		ParentID:  parentID,
		CompanyID: aggregate.CompanyID().Bytes(),
		VendorID:  aggregate.VendorID().Bytes(),
		PrNumber:  aggregate.PrNumber(),
		PoNumber:  aggregate.PoNumber(),
		Status:    int(aggregate.Status()),
		Destination: AddressDTO{
			Line1:   destination.Line1(),
			City:    destination.City(),
			State:   destination.State(),
			Pincode: destination.Pincode().String(),
		},
		Total:     aggregate.Total(),
		OrderDate: aggregate.OrderDate(),
		Items:     items,
	}
}

// toDomain converts a database DTO to a requisition domain aggregate.
func toDomain(dto RequisitionDTO) (*requisition.Requisition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	pincode, err := kernel.NewPincode(dto.Destination.Pincode)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewAddress(
		dto.Destination.Line1, dto.Destination.City, dto.Destination.State, pincode)
	if err != nil {
		return nil, err
	}

	items := make([]requisition.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := requisition.NewLineItem(
			itemDTO.ProductID, itemDTO.Size, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return requisition.RestoreRequisition(
		id, parentID, companyID, vendorID,
		dto.PrNumber, dto.PoNumber, items,
		requisition.Status(dto.Status), destination, dto.Total, dto.OrderDate,
	)
}
