// Package requisition contains the purchase requisition aggregate and its
// workflow status lattice. A requisition raised by an employee may be silently
// split into per-vendor slices; each slice is itself a Requisition pointing at
// the original through its parent id. The lattice gives the order aggregator a
// deterministic total order for bottleneck selection.
package requisition
