// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAggregator: folds split requisition slices into logical orders
//   - DocumentLinker: joins GRNs and invoices to logical orders by link keys
//   - PendingActionResolver: derives the priority-ordered pending actions
//   - ContextResolver: decides manual vs automatic shipping for a request
//   - CourierSelector: serviceability checking with primary/secondary fallback
//
// The aggregation and resolution services are pure functions safe for
// concurrent, repeated use; CourierSelector performs blocking aggregator I/O
// through the narrow capability port.
package services
