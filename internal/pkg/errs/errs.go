package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel error for lookups that found nothing.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid is the sentinel error for malformed or out-of-domain values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the sentinel error for values outside an allowed interval.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired is the sentinel error for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrVersionIsInvalid is the sentinel error for aggregate version mismatches.
	ErrVersionIsInvalid = errors.New("version is invalid")

	// ErrConfigurationIsInvalid is the sentinel error for missing or inconsistent
	// configuration that must stop an operation before any external call is made.
	ErrConfigurationIsInvalid = errors.New("configuration is invalid")

	// ErrRouteIsUnserviceable is the sentinel error for routes no configured
	// courier can serve. Callers are expected to fall back to manual shipping.
	ErrRouteIsUnserviceable = errors.New("route is unserviceable")

	// ErrDependencyFailed is the sentinel error for external collaborator failures.
	// Operations guarded by it guarantee no partial writes, so retries are safe.
	ErrDependencyFailed = errors.New("dependency failed")

	// ErrConflict is the sentinel error for business-rule rejections caused by
	// already-existing state, such as a duplicate open shipment.
	ErrConflict = errors.New("conflict")
)

// sanitize flattens a value into a single-line string safe for log output.
func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its allowed interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates an aggregate version mismatch.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConfigurationError indicates that required configuration is absent or
// inconsistent with the requested operation. It is always raised before any
// external call is attempted.
type ConfigurationError struct {
	Reason string
	Cause  error
}

// NewConfigurationError creates a ConfigurationError without a cause.
func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// NewConfigurationErrorWithCause creates a ConfigurationError wrapping an underlying cause.
func NewConfigurationErrorWithCause(reason string, cause error) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConfigurationIsInvalid, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConfigurationIsInvalid, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfigurationIsInvalid
}

// UnserviceableRouteError indicates that no configured courier can serve the
// source-destination pair. It carries every courier that was checked so the
// caller can report exactly what was tried before suggesting manual entry.
type UnserviceableRouteError struct {
	SourcePincode      string
	DestinationPincode string
	CheckedCouriers    []string
	Cause              error
}

// NewUnserviceableRouteError creates an UnserviceableRouteError without a cause.
func NewUnserviceableRouteError(source, destination string, checkedCouriers []string) *UnserviceableRouteError {
	return &UnserviceableRouteError{
		SourcePincode:      source,
		DestinationPincode: destination,
		CheckedCouriers:    checkedCouriers,
	}
}

// NewUnserviceableRouteErrorWithCause creates an UnserviceableRouteError wrapping an underlying cause.
func NewUnserviceableRouteErrorWithCause(
	source, destination string, checkedCouriers []string, cause error,
) *UnserviceableRouteError {
	return &UnserviceableRouteError{
		SourcePincode:      source,
		DestinationPincode: destination,
		CheckedCouriers:    checkedCouriers,
		Cause:              cause,
	}
}

func (e *UnserviceableRouteError) Error() string {
	msg := fmt.Sprintf("%s: no courier serves %s -> %s (checked: %s)",
		ErrRouteIsUnserviceable, e.SourcePincode, e.DestinationPincode,
		strings.Join(e.CheckedCouriers, ", "))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *UnserviceableRouteError) Unwrap() error {
	return ErrRouteIsUnserviceable
}

// DependencyError indicates that an external collaborator errored or timed out.
// The guarded operation guarantees that no partial state was committed.
type DependencyError struct {
	Dependency string
	Cause      error
}

// NewDependencyError creates a DependencyError wrapping the collaborator failure.
func NewDependencyError(dependency string, cause error) *DependencyError {
	return &DependencyError{Dependency: dependency, Cause: cause}
}

func (e *DependencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyFailed, e.Dependency, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDependencyFailed, e.Dependency)
}

func (e *DependencyError) Unwrap() error {
	return ErrDependencyFailed
}

// ConflictError indicates that the requested operation collides with existing
// state, such as an open shipment already covering the requisition.
type ConflictError struct {
	Resource string
	ID       any
	Cause    error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(resource string, id any) *ConflictError {
	return &ConflictError{Resource: resource, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(resource string, id any, cause error) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s already exists for %s", ErrConflict, e.Resource, sanitize(e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
