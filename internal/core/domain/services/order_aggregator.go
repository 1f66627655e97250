package services

import (
	"sort"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
)

// LogicalOrder is the read-side aggregate of a requisition that may have been
// split across vendors. It is keyed by the shared parent id (or the order's
// own id when standalone), rebuilt on every read, and never persisted.
type LogicalOrder struct {
	key           kernel.UUID
	orders        []*requisition.Requisition
	overallStatus requisition.Status
	displayLabel  string
	items         []requisition.LineItem
	total         float64
	orderDate     time.Time
	isSplit       bool
}

// Key returns the logical order's identifier: the shared parent id for a split
// group, the order's own id otherwise.
func (lo LogicalOrder) Key() kernel.UUID { return lo.key }

// Orders returns the member orders, a single element for standalone orders.
func (lo LogicalOrder) Orders() []*requisition.Requisition { return lo.orders }

// OverallStatus returns the bottleneck status: the member status with the
// minimum lattice rank, so the most-behind vendor determines the group's
// displayed progress.
func (lo LogicalOrder) OverallStatus() requisition.Status { return lo.overallStatus }

// DisplayLabel returns the most frequent raw status literal among members,
// ties broken by first occurrence. Display and workflow rank are deliberately
// different projections of the same children.
func (lo LogicalOrder) DisplayLabel() string { return lo.displayLabel }

// Items returns the concatenation of every member's line items, order
// preserved, duplicates allowed.
func (lo LogicalOrder) Items() []requisition.LineItem { return lo.items }

// Total returns the arithmetic sum of member totals.
func (lo LogicalOrder) Total() float64 { return lo.total }

// OrderDate returns the most recent member order date, zero when no member
// carries one.
func (lo LogicalOrder) OrderDate() time.Time { return lo.orderDate }

// IsSplit reports whether the logical order folds two or more vendor slices.
func (lo LogicalOrder) IsSplit() bool { return lo.isSplit }

// OrderAggregator is a domain service that folds per-vendor requisition slices
// back into the logical orders an operator sees. It is pure and side-effect
// free: malformed input degrades to standalone orders rather than failing, so
// the read path never errors.
type OrderAggregator struct{}

// NewOrderAggregator creates a new OrderAggregator instance.
func NewOrderAggregator() OrderAggregator {
	return OrderAggregator{}
}

// Aggregate groups the input orders into logical orders.
//
// Grouping rules:
//   - Orders sharing a parent id form one logical order keyed by that parent.
//   - An order with no parent that nobody references is a standalone singleton.
//   - An order referenced as parent by others is never its own logical order;
//     it exists only through its children.
//   - An order whose parent id matches nothing else in the input still groups
//     under that parent id; a lone child behaves exactly like a standalone
//     order, so dangling references degrade instead of failing.
//
// Output is sorted by order date descending; orders without a date sort last
// in stable relative order.
func (a OrderAggregator) Aggregate(orders []*requisition.Requisition) []LogicalOrder {
	referencedAsParent := make(map[kernel.UUID]bool)
	for _, o := range orders {
		if o == nil {
			continue
		}
		if parentID := o.ParentID(); parentID != nil {
			referencedAsParent[*parentID] = true
		}
	}

	groups := make(map[kernel.UUID][]*requisition.Requisition)
	var keys []kernel.UUID
	appendMember := func(key kernel.UUID, o *requisition.Requisition) {
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], o)
	}

	for _, o := range orders {
		if o == nil || o.Validate() != nil {
			continue
		}
		if parentID := o.ParentID(); parentID != nil {
			appendMember(*parentID, o)
			continue
		}
		if referencedAsParent[o.ID()] {
			// A split parent is a bookkeeping record; only its children render.
			continue
		}
		appendMember(o.ID(), o)
	}

	result := make([]LogicalOrder, 0, len(keys))
	for _, key := range keys {
		result = append(result, a.fold(key, groups[key]))
	}

	sort.SliceStable(result, func(i, j int) bool {
		di, dj := result[i].orderDate, result[j].orderDate
		if di.IsZero() {
			return false
		}
		if dj.IsZero() {
			return true
		}
		return di.After(dj)
	})

	return result
}

// fold derives the logical order for one group of member orders.
func (a OrderAggregator) fold(key kernel.UUID, members []*requisition.Requisition) LogicalOrder {
	lo := LogicalOrder{
		key:     key,
		orders:  members,
		isSplit: len(members) > 1,
	}

	type labelStat struct {
		count      int
		firstIndex int
	}
	labels := make(map[string]labelStat)

	bottleneck := members[0].Status()
	for i, m := range members {
		if m.Status().Rank() < bottleneck.Rank() {
			bottleneck = m.Status()
		}

		label := m.Status().String()
		stat, seen := labels[label]
		if !seen {
			stat.firstIndex = i
		}
		stat.count++
		labels[label] = stat

		lo.items = append(lo.items, m.Items()...)
		lo.total += m.Total()

		if d := m.OrderDate(); !d.IsZero() && d.After(lo.orderDate) {
			lo.orderDate = d
		}
	}

	lo.overallStatus = bottleneck
	lo.displayLabel = members[0].Status().String()
	best := labels[lo.displayLabel]
	for label, stat := range labels {
		if stat.count > best.count ||
			(stat.count == best.count && stat.firstIndex < best.firstIndex) {
			lo.displayLabel = label
			best = stat
		}
	}

	return lo
}
