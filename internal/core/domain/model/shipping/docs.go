// Package shipping models the routing configuration the workflow engine reads
// when deciding how a shipment leaves the building: per vendor-company courier
// routing and company dispatch warehouses. Both are administrator-maintained
// and read-only to the engine.
package shipping
