package shipment

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// DefaultDivisor is the carrier-standard volumetric divisor applied when a
// package does not declare its own.
const DefaultDivisor = 5000.0

// ErrDimensionsAreNotConstructed is returned when Dimensions were not created
// via NewDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is an L×B×H×divisor tuple in centimeters. Volumetric weight is
// always derived as (L×B×H)/divisor and never stored independently.
type Dimensions struct { //nolint:recvcheck //using for validation
	length  float64
	breadth float64
	height  float64
	divisor float64

	guard guard.ConstructorGuard
}

// NewDimensions creates validated Dimensions. Length, breadth, and height must
// all be present and positive. A zero divisor falls back to DefaultDivisor; a
// negative one is rejected.
func NewDimensions(length, breadth, height, divisor float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if divisor == 0 {
		divisor = DefaultDivisor
	}

	if err := errors.Join(
		d.setSide("length", &d.length, length),
		d.setSide("breadth", &d.breadth, breadth),
		d.setSide("height", &d.height, height),
		d.setDivisor(divisor),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate checks that the Dimensions were constructed via NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the length in cm.
func (d Dimensions) Length() float64 { return d.length }

// Breadth returns the breadth in cm.
func (d Dimensions) Breadth() float64 { return d.breadth }

// Height returns the height in cm.
func (d Dimensions) Height() float64 { return d.height }

// Divisor returns the volumetric divisor.
func (d Dimensions) Divisor() float64 { return d.divisor }

// VolumetricWeightKg derives the volumetric weight: (L×B×H)/divisor.
func (d Dimensions) VolumetricWeightKg() float64 {
	return d.length * d.breadth * d.height / d.divisor
}

func (d *Dimensions) setSide(name string, field *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%f is not greater than 0", value))
	}
	*field = value
	return nil
}

func (d *Dimensions) setDivisor(divisor float64) error {
	if divisor < 0 {
		return errs.NewValueIsInvalidErrorWithCause("divisor",
			fmt.Errorf("%f is negative", divisor))
	}
	d.divisor = divisor
	return nil
}

// ErrPackageTemplateIsNotConstructed is returned when a PackageTemplate was not
// created via NewPackageTemplate.
var ErrPackageTemplateIsNotConstructed = errors.New(
	"PackageTemplate must be created via NewPackageTemplate")

// PackageTemplate is a reusable parcel definition maintained by logistics
// admins: named dimensions plus the declared dead (actual) weight of the
// packaging itself.
type PackageTemplate struct {
	id           kernel.UUID
	name         string
	dimensions   Dimensions
	deadWeightKg float64

	guard guard.ConstructorGuard
}

// NewPackageTemplate creates a validated PackageTemplate.
func NewPackageTemplate(
	id kernel.UUID, name string, dimensions Dimensions, deadWeightKg float64,
) (*PackageTemplate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("package template name")
	}
	if err := dimensions.Validate(); err != nil {
		return nil, err
	}
	if deadWeightKg < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("dead weight",
			fmt.Errorf("%f is negative", deadWeightKg))
	}

	return &PackageTemplate{
		id:           id,
		name:         name,
		dimensions:   dimensions,
		deadWeightKg: deadWeightKg,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PackageTemplate was created through its constructor.
func (pt *PackageTemplate) Validate() error {
	if pt == nil {
		return ErrPackageTemplateIsNotConstructed
	}
	return pt.guard.Validate(ErrPackageTemplateIsNotConstructed)
}

// ID returns the template identifier.
func (pt *PackageTemplate) ID() kernel.UUID { return pt.id }

// Name returns the template's display name.
func (pt *PackageTemplate) Name() string { return pt.name }

// Dimensions returns the template's parcel dimensions.
func (pt *PackageTemplate) Dimensions() Dimensions { return pt.dimensions }

// DeadWeightKg returns the declared actual weight of the packed parcel.
func (pt *PackageTemplate) DeadWeightKg() float64 { return pt.deadWeightKg }

// Parcel is the resolved physical package of a shipment: either a template
// reference or operator-entered custom dimensions, with the derived weights.
type Parcel struct {
	templateID   *kernel.UUID
	dimensions   Dimensions
	deadWeightKg float64
}

// ResolveParcel implements dimension resolution: a supplied template wins;
// otherwise complete custom dimensions are required. The volumetric-weight
// billing comparison is always computed, never skipped: the chargeable weight
// is the greater of volumetric and dead weight.
func ResolveParcel(template *PackageTemplate, custom *Dimensions) (Parcel, error) {
	if template != nil {
		if err := template.Validate(); err != nil {
			return Parcel{}, err
		}
		id := template.ID()
		return Parcel{
			templateID:   &id,
			dimensions:   template.Dimensions(),
			deadWeightKg: template.DeadWeightKg(),
		}, nil
	}

	if custom == nil {
		return Parcel{}, errs.NewValueIsRequiredError("package template or custom dimensions")
	}
	if err := custom.Validate(); err != nil {
		return Parcel{}, err
	}

	return Parcel{dimensions: *custom}, nil
}

// RestoreParcel reconstructs a Parcel from persistent storage. The template
// reference is kept as recorded; the template itself is not re-fetched.
func RestoreParcel(
	templateID *kernel.UUID, dimensions Dimensions, deadWeightKg float64,
) (Parcel, error) {
	if templateID != nil {
		if err := templateID.Validate(); err != nil {
			return Parcel{}, err
		}
	}
	if err := dimensions.Validate(); err != nil {
		return Parcel{}, err
	}
	if deadWeightKg < 0 {
		return Parcel{}, errs.NewValueIsInvalidErrorWithCause("dead weight",
			fmt.Errorf("%f is negative", deadWeightKg))
	}

	return Parcel{
		templateID:   templateID,
		dimensions:   dimensions,
		deadWeightKg: deadWeightKg,
	}, nil
}

// TemplateID returns the source template id, nil for custom dimensions.
func (p Parcel) TemplateID() *kernel.UUID { return p.templateID }

// Dimensions returns the resolved dimensions.
func (p Parcel) Dimensions() Dimensions { return p.dimensions }

// DeadWeightKg returns the declared dead weight, zero for custom dimensions.
func (p Parcel) DeadWeightKg() float64 { return p.deadWeightKg }

// VolumetricWeightKg derives the parcel's volumetric weight.
func (p Parcel) VolumetricWeightKg() float64 {
	return p.dimensions.VolumetricWeightKg()
}

// ChargeableWeightKg returns the greater of volumetric and dead weight, the
// weight carriers bill against.
func (p Parcel) ChargeableWeightKg() float64 {
	volumetric := p.VolumetricWeightKg()
	if p.deadWeightKg > volumetric {
		return p.deadWeightKg
	}
	return volumetric
}
