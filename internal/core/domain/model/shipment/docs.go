// Package shipment contains the shipment aggregate, its monotonic status state
// machine, and parcel weight computation. Dimension resolution (template versus
// custom), volumetric weight ((L×B×H)/divisor), and the chargeable-weight
// billing comparison all live here so both manual and aggregator-issued
// shipments share one implementation.
package shipment
