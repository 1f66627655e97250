package queries

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/document"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// ListLogicalOrdersQueryHandler rebuilds the logical-order listing for a
// company. The read path is pure aggregation over fetched requisitions and
// pending documents, fronted by a cache: entries are safe to drop at any time
// and a failing cache degrades to an uncached read.
type ListLogicalOrdersQueryHandler struct {
	requisitions ports.RequisitionRepository
	documents    ports.DocumentRepository
	cache        ports.OrderListCache
	aggregator   services.OrderAggregator
	linker       services.DocumentLinker
	resolver     services.PendingActionResolver
	cacheTTL     time.Duration
	log          *slog.Logger
}

// NewListLogicalOrdersQueryHandler creates a handler for logical-order listings.
// cache may be nil to disable caching entirely.
func NewListLogicalOrdersQueryHandler(
	requisitions ports.RequisitionRepository,
	documents ports.DocumentRepository,
	cache ports.OrderListCache,
	cacheTTL time.Duration,
	log *slog.Logger,
) ListLogicalOrdersQueryHandler {
	return ListLogicalOrdersQueryHandler{
		requisitions: requisitions,
		documents:    documents,
		cache:        cache,
		aggregator:   services.NewOrderAggregator(),
		linker:       services.NewDocumentLinker(),
		resolver:     services.NewPendingActionResolver(),
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// Handle executes the listing query.
func (h ListLogicalOrdersQueryHandler) Handle(
	ctx context.Context, query ListLogicalOrdersQuery,
) ([]LogicalOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cacheKey := listingCacheKey(query)
	if cached, ok := h.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	orders, err := h.requisitions.GetAllForCompany(ctx, query.CompanyID())
	if err != nil {
		return nil, err
	}

	logicalOrders := h.aggregator.Aggregate(orders)
	logicalOrders = filterLogicalOrders(logicalOrders, query)

	grns, err := h.documents.GetPendingForCompany(ctx, query.CompanyID(), document.GRN)
	if err != nil {
		return nil, err
	}
	invoices, err := h.documents.GetPendingForCompany(ctx, query.CompanyID(), document.Invoice)
	if err != nil {
		return nil, err
	}

	linked := h.linker.Link(logicalOrders, append(grns, invoices...))

	responses := make([]LogicalOrderResponse, 0, len(logicalOrders))
	for _, lo := range logicalOrders {
		actions := h.resolver.Resolve(lo, linked[lo.Key()], query.Role())
		responses = append(responses, toLogicalOrderResponse(lo, actions))
	}

	h.toCache(ctx, cacheKey, responses)

	return responses, nil
}

func (h ListLogicalOrdersQueryHandler) fromCache(
	ctx context.Context, key string,
) ([]LogicalOrderResponse, bool) {
	if h.cache == nil {
		return nil, false
	}

	payload, err := h.cache.Get(ctx, key)
	if err != nil {
		if h.log != nil && !isCacheMiss(err) {
			h.log.Debug("order list cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var responses []LogicalOrderResponse
	if err = json.Unmarshal(payload, &responses); err != nil {
		return nil, false
	}
	return responses, true
}

func (h ListLogicalOrdersQueryHandler) toCache(
	ctx context.Context, key string, responses []LogicalOrderResponse,
) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(responses)
	if err != nil {
		return
	}
	if err = h.cache.Set(ctx, key, payload, h.cacheTTL); err != nil && h.log != nil {
		h.log.Debug("order list cache write failed", "key", key, "error", err)
	}
}

func isCacheMiss(err error) bool {
	return errors.Is(err, ports.ErrCacheMiss)
}

// listingCacheKey leads with the company id so a company-wide invalidation can
// match every variant by prefix. The filter variant is hashed with a NUL
// separator between fields; joining raw user input would let a crafted search
// or location collide with another filter combination.
func listingCacheKey(query ListLogicalOrdersQuery) string {
	variant := sha256.Sum256([]byte(strings.Join([]string{
		string(query.Role()), query.StatusFilter(), query.Location(), query.Search(),
	}, "\x00")))
	return fmt.Sprintf("%s:%x", query.CompanyID(), variant[:8])
}

// filterLogicalOrders applies the optional status, location, and search filters.
func filterLogicalOrders(
	logicalOrders []services.LogicalOrder, query ListLogicalOrdersQuery,
) []services.LogicalOrder {
	if query.StatusFilter() == "" && query.Location() == "" && query.Search() == "" {
		return logicalOrders
	}

	filtered := make([]services.LogicalOrder, 0, len(logicalOrders))
	for _, lo := range logicalOrders {
		if matchesStatus(lo, query.StatusFilter()) &&
			matchesLocation(lo, query.Location()) &&
			matchesSearch(lo, query.Search()) {
			filtered = append(filtered, lo)
		}
	}
	return filtered
}

func matchesStatus(lo services.LogicalOrder, statusFilter string) bool {
	if statusFilter == "" {
		return true
	}
	return lo.OverallStatus().String() == statusFilter || lo.DisplayLabel() == statusFilter
}

func matchesLocation(lo services.LogicalOrder, location string) bool {
	if location == "" {
		return true
	}
	for _, member := range lo.Orders() {
		if strings.EqualFold(member.Destination().City(), location) {
			return true
		}
	}
	return false
}

func matchesSearch(lo services.LogicalOrder, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, member := range lo.Orders() {
		if strings.Contains(strings.ToLower(member.PrNumber()), needle) ||
			strings.Contains(strings.ToLower(member.PoNumber()), needle) {
			return true
		}
		for _, item := range member.Items() {
			if strings.Contains(strings.ToLower(item.ProductID()), needle) {
				return true
			}
		}
	}
	return false
}

func toLogicalOrderResponse(
	lo services.LogicalOrder, actions []services.Action,
) LogicalOrderResponse {
	resp := LogicalOrderResponse{
		ID:            lo.Key().String(),
		OverallStatus: lo.OverallStatus().String(),
		DisplayStatus: lo.DisplayLabel(),
		IsSplit:       lo.IsSplit(),
		Total:         lo.Total(),
		Items:         make([]LineItemResponse, 0, len(lo.Items())),
	}

	if d := lo.OrderDate(); !d.IsZero() {
		resp.OrderDate = &d
	}

	for _, item := range lo.Items() {
		resp.Items = append(resp.Items, LineItemResponse{
			ProductID: item.ProductID(),
			Size:      item.Size(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	for i, action := range actions {
		actionResp := ActionResponse{
			Kind:     action.Kind.String(),
			EntityID: action.EntityID.String(),
			Priority: action.Priority,
		}
		if i == 0 {
			resp.PrimaryAction = &actionResp
			continue
		}
		resp.SecondaryActions = append(resp.SecondaryActions, actionResp)
	}

	return resp
}
