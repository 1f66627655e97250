package documentrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Get retrieves a document by ID.
func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	err := r.db.WithContext(ctx).Preload("PrNumbers").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingForCompany retrieves every pending document of the given kind for
// a company. Approved and rejected documents are excluded.
func (r *GormDocumentRepository) GetPendingForCompany(
	ctx context.Context, companyID kernel.UUID, kind document.Kind,
) ([]*document.Document, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).Preload("PrNumbers").
		Find(&dtos, "company_id = ? AND kind = ? AND status IN ?",
			companyID.Bytes(), int(kind), pendingStatuses()).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		documents = append(documents, aggregate)
	}

	return documents, nil
}

func pendingStatuses() []int {
	return []int{int(document.Raised), int(document.PendingApproval)}
}
