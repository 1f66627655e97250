package shipment

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Created ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Failed
//
// Transitions are monotonic; no transition may move status backward.
// Delivered and Failed are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Created is the initial status of a freshly recorded shipment.
	Created

	// InTransit means the carrier confirmed pickup and the parcel is moving.
	InTransit

	// Delivered means the carrier confirmed delivery. Terminal.
	Delivered

	// Failed means the shipment was lost, returned, or cancelled. Terminal,
	// reachable from any non-terminal state.
	Failed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Created:       "CREATED",
		InTransit:     "IN_TRANSIT",
		Delivered:     "DELIVERED",
		Failed:        "FAILED",
	}
}

// Validate checks that the Status is a valid shipment status.
func (s Status) Validate() error {
	switch s {
	case Created, InTransit, Delivered, Failed:
		return nil
	case UnknownStatus:
	}
	return errs.NewValueIsInvalidErrorWithCause("shipment status",
		fmt.Errorf("%d is not a valid shipment status", s))
}

// String returns the raw status literal.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
// A shipment in a non-terminal status is "open": it blocks creation of another
// shipment for the same requisition-vendor pair.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// Advance validates the monotonic transition from s to next and returns next.
//
// Valid transitions: Created→InTransit, InTransit→Delivered, and any
// non-terminal status → Failed. Everything else, including any backward move,
// is rejected.
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("%s is terminal, cannot advance to %s", s.String(), next.String()))
	}

	valid := (s == Created && next == InTransit) ||
		(s == InTransit && next == Delivered) ||
		(!s.IsTerminal() && next == Failed)
	if !valid {
		return 0, errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("cannot advance from %s to %s", s.String(), next.String()))
	}

	return next, nil
}

// Mode distinguishes operator-entered shipments from carrier-aggregator issued ones.
type Mode int

const (
	// UnknownMode represents an invalid or undefined mode.
	UnknownMode Mode = iota

	// Manual shipments are recorded by an operator with an optional AWB number.
	Manual

	// API shipments are issued through the carrier aggregator and carry a
	// provider tracking reference.
	API
)

func modeStrings() map[Mode]string {
	return map[Mode]string{
		UnknownMode: "UNKNOWN",
		Manual:      "MANUAL",
		API:         "API",
	}
}

// Validate checks that the Mode is Manual or API.
func (m Mode) Validate() error {
	if m != Manual && m != API {
		return errs.NewValueIsInvalidErrorWithCause("shipment mode",
			fmt.Errorf("%d is not a valid shipment mode", m))
	}
	return nil
}

// String returns the raw mode literal.
func (m Mode) String() string {
	if str, ok := modeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransportMode is how a manual shipment physically travels.
type TransportMode int

const (
	// UnknownTransport represents an invalid or undefined transport mode.
	UnknownTransport TransportMode = iota

	// Courier means a third-party courier carries the parcel.
	Courier

	// Direct means the vendor's own transport delivers it.
	Direct

	// HandDelivery means an individual hands the parcel over.
	HandDelivery
)

func transportStrings() map[TransportMode]string {
	return map[TransportMode]string{
		UnknownTransport: "UNKNOWN",
		Courier:          "COURIER",
		Direct:           "DIRECT",
		HandDelivery:     "HAND_DELIVERY",
	}
}

// Validate checks that the TransportMode is a known mode of transport.
func (t TransportMode) Validate() error {
	switch t {
	case Courier, Direct, HandDelivery:
		return nil
	case UnknownTransport:
	}
	return errs.NewValueIsInvalidErrorWithCause("mode of transport",
		fmt.Errorf("%d is not a valid mode of transport", t))
}

// String returns the raw transport literal.
func (t TransportMode) String() string {
	if str, ok := transportStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
