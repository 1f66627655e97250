// Package errs provides standardized error types for the order fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic validation errors shared by all value objects:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside an allowed interval
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the fulfillment-specific error taxonomy raised by the shipment path:
//   - ConfigurationError: Missing warehouse/routing or a disabled integration;
//     always raised before any external call
//   - UnserviceableRouteError: No configured courier can serve the route;
//     the caller should fall back to manual shipment entry
//   - DependencyError: The carrier aggregator errored or timed out; the guarded
//     operation performed no partial write and is safe to retry
//   - ConflictError: The operation collides with existing state, e.g. an open
//     shipment already covering the requisition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrRouteIsUnserviceable)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// HTTP adapters rely on the sentinels to distinguish validation failures (400)
// from configuration/business-rule rejections (422/409) and external-dependency
// failures (502), so clients can offer "retry" only where it is safe.
package errs
