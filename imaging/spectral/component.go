package spectral

import "fmt"

// Component names one of the four per-image spectrum components that can be
// selected for a mix.
type Component int

const (
	Magnitude Component = iota
	Phase
	Real
	Imaginary
)

var componentNames = [...]string{"magnitude", "phase", "real", "imaginary"}

// String returns the lower-case component name.
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// Valid reports whether c is one of the four known components.
func (c Component) Valid() bool {
	return c >= Magnitude && c <= Imaginary
}

// ParseComponent maps a component name to its value.
func ParseComponent(s string) (Component, error) {
	for i, name := range componentNames {
		if s == name {
			return Component(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Component) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownComponent, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Component) UnmarshalText(text []byte) error {
	v, err := ParseComponent(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
