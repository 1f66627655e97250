// Package queries contains read-side operations in the CQRS architecture.
// Query handlers rebuild logical orders on every read; nothing here mutates
// system state.
package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrListLogicalOrdersQueryIsNotConstructed = errors.New(
	"ListLogicalOrdersQuery must be created via NewListLogicalOrdersQuery constructor",
)

// ListLogicalOrdersQuery retrieves the aggregated logical-order listing for a
// company, filtered and annotated with pending actions for the calling role.
//
// Example:
//
//	query, err := NewListLogicalOrdersQuery(
//	    companyID, services.RoleCompanyAdmin, "", "Bengaluru", "")
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
type ListLogicalOrdersQuery struct { //nolint:recvcheck //using for validation
	companyID    kernel.UUID
	role         services.CallerRole
	statusFilter string
	location     string
	search       string

	guard guard.ConstructorGuard
}

// NewListLogicalOrdersQuery creates a listing query. statusFilter, location,
// and search are optional; empty values match everything. The caller role is
// required because pending approval actions are only offered to company admins.
func NewListLogicalOrdersQuery(
	companyID kernel.UUID,
	role services.CallerRole,
	statusFilter string,
	location string,
	search string,
) (ListLogicalOrdersQuery, error) {
	query := ListLogicalOrdersQuery{
		statusFilter: statusFilter,
		location:     location,
		search:       search,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCompanyID(companyID),
		query.setRole(role),
	); err != nil {
		return ListLogicalOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListLogicalOrdersQueryIsNotConstructed if validation fails.
func (q ListLogicalOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListLogicalOrdersQueryIsNotConstructed)
}

// CompanyID returns the company whose orders are listed.
func (q ListLogicalOrdersQuery) CompanyID() kernel.UUID { return q.companyID }

// Role returns the caller's identity role.
func (q ListLogicalOrdersQuery) Role() services.CallerRole { return q.role }

// StatusFilter returns the raw status literal to filter by, empty for all.
func (q ListLogicalOrdersQuery) StatusFilter() string { return q.statusFilter }

// Location returns the destination city to filter by, empty for all.
func (q ListLogicalOrdersQuery) Location() string { return q.location }

// Search returns the free-text search term, empty for none.
func (q ListLogicalOrdersQuery) Search() string { return q.search }

func (q *ListLogicalOrdersQuery) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	q.companyID = companyID
	return nil
}

func (q *ListLogicalOrdersQuery) setRole(role services.CallerRole) error {
	switch role {
	case services.RoleCompanyAdmin, services.RoleLocationAdmin, services.RoleVendor:
		q.role = role
		return nil
	default:
		return errs.NewValueIsInvalidError("caller role")
	}
}

// ActionResponse is one pending action in a listing response.
type ActionResponse struct {
	Kind     string  `json:"kind"`
	EntityID string  `json:"entityId"`
	Priority float64 `json:"priority"`
}

// LineItemResponse is one line item in a listing response.
type LineItemResponse struct {
	ProductID string  `json:"productId"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// LogicalOrderResponse is one aggregated logical order in a listing response.
// PrimaryAction is the most urgent pending action; SecondaryActions hold the
// remainder, already sorted by priority, for a disclosure control.
type LogicalOrderResponse struct {
	ID               string             `json:"id"`
	OverallStatus    string             `json:"overallStatus"`
	DisplayStatus    string             `json:"displayStatus"`
	IsSplit          bool               `json:"isSplit"`
	Total            float64            `json:"total"`
	OrderDate        *time.Time         `json:"orderDate,omitempty"`
	Items            []LineItemResponse `json:"items"`
	PrimaryAction    *ActionResponse    `json:"primaryAction,omitempty"`
	SecondaryActions []ActionResponse   `json:"secondaryActions,omitempty"`
}
