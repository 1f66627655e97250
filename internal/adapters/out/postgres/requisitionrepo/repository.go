package requisitionrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequisitionRepository implements RequisitionRepository using GORM.
type GormRequisitionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequisitionRepository creates a new GORM requisition repository.
func NewGormRequisitionRepository(db *gorm.DB, tracker aggregateTracker) *GormRequisitionRepository {
	return &GormRequisitionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new requisition and its line items to the database.
func (r *GormRequisitionRepository) Add(ctx context.Context, aggregate *requisition.Requisition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing requisition to the database. Line items are
// immutable after creation, so only the requisition row is written.
func (r *GormRequisitionRepository) Update(ctx context.Context, aggregate *requisition.Requisition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequisitionDTO{}).
		Where("id = ?", dto.ID).
		Omit("Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a requisition by ID.
func (r *GormRequisitionRepository) Get(ctx context.Context, id kernel.UUID) (*requisition.Requisition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequisitionDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requisition", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForCompany retrieves every requisition of a company, split children
// and their parents included.
func (r *GormRequisitionRepository) GetAllForCompany(
	ctx context.Context, companyID kernel.UUID,
) ([]*requisition.Requisition, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequisitionDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "company_id = ?", companyID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForVendor retrieves every requisition assigned to a vendor.
func (r *GormRequisitionRepository) GetAllForVendor(
	ctx context.Context, vendorID kernel.UUID,
) ([]*requisition.Requisition, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequisitionDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RequisitionDTO) ([]*requisition.Requisition, error) {
	requisitions := make([]*requisition.Requisition, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requisitions = append(requisitions, aggregate)
	}

	return requisitions, nil
}
