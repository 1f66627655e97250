// Package kernel contains shared value objects used across the fulfillment
// domain: entity identifiers (UUID), postal pincodes, and delivery addresses.
// All types are immutable, constructor-validated, and safe for concurrent use;
// zero values fail validation by design.
package kernel
