package materials

import (
	"github.com/omnihola/ashby-plot/pkg/errors"
)

// Property names a plottable material quantity, e.g. "Density".
// Property names come from spreadsheet column headers and are validated on
// ingestion.
type Property string

// Built-in properties with units in the default table.
const (
	PropDensity             Property = "Density"
	PropTensileStrength     Property = "Tensile Strength"
	PropYoungModulus        Property = "Young Modulus"
	PropFractureToughness   Property = "Fracture Toughness"
	PropThermalConductivity Property = "Thermal Conductivity"
	PropThermalExpansion    Property = "Thermal expansion"
	PropResistivity         Property = "Resistivity"
	PropPoisson             Property = "Poisson"
	PropPoissonDifference   Property = "Poisson difference"
)

// Units maps properties to display unit strings.
type Units map[Property]string

// DefaultUnits returns the built-in unit table for common material
// properties. Callers may extend the returned map before passing it on.
func DefaultUnits() Units {
	return Units{
		PropDensity:             "kg/m³",
		PropTensileStrength:     "MPa",
		PropYoungModulus:        "GPa",
		PropFractureToughness:   "MPa·√m",
		PropThermalConductivity: "W/m·K",
		PropThermalExpansion:    "10⁻⁶/m",
		PropResistivity:         "Ω·m",
		PropPoisson:             "-",
		PropPoissonDifference:   "-",
	}
}

// Lookup resolves a property's unit. Unknown properties are an
// UNKNOWN_PROPERTY error so a typo in an axis quantity fails loudly
// instead of rendering an unlabeled axis.
func (u Units) Lookup(p Property) (string, error) {
	unit, ok := u[p]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownProperty, "no unit defined for property %q", p)
	}
	return unit, nil
}

// AxisLabel formats the conventional "<Property>, <unit>" axis label.
// The hyperbolic Poisson ratio gets its descriptive long form.
func (u Units) AxisLabel(p Property) (string, error) {
	unit, err := u.Lookup(p)
	if err != nil {
		return "", err
	}
	if p == PropPoissonDifference {
		return "Hyperbolic Poisson Ratio 1/(1+v), " + unit, nil
	}
	return string(p) + ", " + unit, nil
}
