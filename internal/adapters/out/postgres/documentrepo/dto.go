// Package documentrepo provides data transfer objects and mapping functions
// for GRN and invoice persistence. The fulfillment core only reads documents;
// they are raised and approved elsewhere.
package documentrepo

import (
	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO represents the database structure for persisting documents.
// Kind and status are indexed for the pending-document listing query.
type DocumentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind      int        `gorm:"index"`
	Status    int        `gorm:"index"`
	CompanyID uuid.UUID  `gorm:"type:uuid;index"`
	PoNumber  string     `gorm:"index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`

	PrNumbers []PrNumberDTO `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

// PrNumberDTO is one requisition-number link key of a document. A single
// document may reference several requisition numbers.
type PrNumberDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	DocumentID uuid.UUID `gorm:"type:uuid;index"`
	PrNumber   string    `gorm:"index"`
}

// TableName specifies the database table name for document link keys.
func (PrNumberDTO) TableName() string {
	return "document_pr_numbers"
}

// fromDomain converts a document domain aggregate to its database representation.
func fromDomain(aggregate *document.Document) DocumentDTO {
	keys := aggregate.Keys()

	var orderID *uuid.UUID
	if id := keys.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	prNumbers := make([]PrNumberDTO, 0, len(keys.PrNumbers()))
	for _, prNumber := range keys.PrNumbers() {
		prNumbers = append(prNumbers, PrNumberDTO{
			DocumentID: aggregate.ID().Bytes(),
			PrNumber:   prNumber,
		})
	}

	return DocumentDTO{
		ID:        aggregate.ID().Bytes(),
		Kind:      int(aggregate.Kind()),
		Status:    int(aggregate.Status()),
		CompanyID: aggregate.CompanyID().Bytes(),
		PoNumber:  keys.PoNumber(),
		OrderID:   orderID,
		PrNumbers: prNumbers,
	}
}

// toDomain converts a database DTO to a document domain aggregate.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	prNumbers := make([]string, 0, len(dto.PrNumbers))
	for _, prDTO := range dto.PrNumbers {
		prNumbers = append(prNumbers, prDTO.PrNumber)
	}

	keys, err := document.NewLinkKeys(dto.PoNumber, prNumbers, orderID)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(
		id, document.Kind(dto.Kind), document.Status(dto.Status), companyID, keys)
}
